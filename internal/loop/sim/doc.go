// Package sim is the per-frame simulation of a driving session: road and
// traffic scrolling, time-based difficulty, player steering, collision
// damage, playfield bounds and the playing/lost transition.
//
// The package performs no I/O of its own. Each frame the host hands Update
// the scene, the drained-once collision queue, an input query and an audio
// sink, together with the session being advanced.
package sim
