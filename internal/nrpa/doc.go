// Package nrpa implements Nested Rollout Policy Adaptation, a recursive Monte Carlo
// search for high-scoring action sequences in a deterministic, single-player,
// sequential decision problem.
//
// At every recursion level the search repeatedly invokes the level below, keeps the
// best sequence found so far, and adapts a softmax policy over move codes toward
// that best sequence. The base level (level 0) draws a single randomized simulation
// from the current policy.
//
// The environment itself -- the game or puzzle being searched -- is supplied by the
// caller through the Board interface; this package only ever sees move codes, never
// board internals.
package nrpa
