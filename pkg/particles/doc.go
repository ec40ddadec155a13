// Package particles implements a small frame-driven particle animation
// core: leaf emitters that spawn short-lived point or streak primitives
// along a line, and composite groups that replay any number of particle
// systems either together under one shared clock (SyncGroup) or
// one-at-a-time in sequence (SeqGroup).
//
// Everything that can be ticked implements the System interface, so
// groups nest arbitrarily (groups of groups of emitters). Keyframe
// parameter arrays (densities, locations, colors, sizes) are linearly
// interpolated across each system's period.
//
// The package never draws pixels itself. Rendering, random sampling and
// frame timing are external collaborators injected through the
// Renderer, Sampler, Clock and DeltaSource types.
package particles
