// Package layout positions graph nodes on the canvas.
//
// Two engines are provided, mirroring the two ways a diagram reaches the
// screen:
//
//   - [Hierarchical]: rank-based automatic layout for first-view graphs,
//     left-to-right with fixed spacing constants
//   - [Fixed]: restores previously saved positions without moving anything
//
// [Compose] selects between them: if any persisted position exists the fixed
// engine is used, so a layout run never silently rearranges nodes the user
// already placed.
//
// Supporting helpers handle grid snapping ([Snap]) and viewport fitting
// ([Fit]).
package layout
