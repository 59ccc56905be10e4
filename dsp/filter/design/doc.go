// Package design provides second-order IIR coefficient designers.
//
// The functions follow the RBJ Audio EQ Cookbook and return biquad
// coefficients normalized so that a0 = 1, ready for dsp/filter/biquad.
// Invalid frequencies or sample rates yield zero coefficients, which the
// biquad runtime treats as a muted section.
//
// The sub-package design/pass builds Butterworth cascades from these
// sections.
package design
