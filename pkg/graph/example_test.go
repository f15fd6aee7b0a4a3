package graph_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/pidcanvas/pidcanvas/pkg/graph"
)

func ExampleWrite() {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "pump"}, {ID: "tank"}},
		Edges: []graph.Edge{{ID: "e0", Source: "pump", Target: "tank"}},
	}

	// Write to a buffer (or any io.Writer)
	var buf bytes.Buffer
	if err := graph.Write(g, &buf); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(buf.String())
	// Output:
	// {
	//   "nodes": [
	//     {
	//       "id": "pump"
	//     },
	//     {
	//       "id": "tank"
	//     }
	//   ],
	//   "edges": [
	//     {
	//       "id": "e0",
	//       "source": "pump",
	//       "target": "tank"
	//     }
	//   ]
	// }
}

func ExampleBuild() {
	// Input in the loose shapes upstream tools produce: bare id strings,
	// pair edges, and legacy endpoint spellings.
	data := []byte(`{
		"nodes": ["pump", {"id": "tank"}, {"id": "valve"}],
		"edges": [["pump", "valve"], {"from": "valve", "to": "tank"}]
	}`)

	nodes, edges, err := graph.ParseInput(data)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	g := graph.Build(nodes, edges, log.New(io.Discard))
	for _, e := range g.Edges {
		fmt.Printf("%s: %s -> %s\n", e.ID, e.Source, e.Target)
	}
	// Output:
	// e0: pump -> valve
	// e1: valve -> tank
}
