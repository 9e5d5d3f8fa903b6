// Package moduli derives scalar isotropic elastic constants from a
// fitted 6x6 elastic tensor.
//
// The formulas are deterministic closed forms over the tensor's 3x3
// blocks: Lamé coefficient and shear modulus from block diagonals, bulk
// modulus from the full upper block mean, Young's modulus and Poisson's
// ratio from the inverted upper block, and the Zener anisotropy ratio
// (exactly 1 for a fully isotropic response).
//
// ⚠️ No validity checks are performed: the scalars are only physically
// meaningful for a near-isotropic material. Anisotropic tensors still
// produce numbers — check ZenerRatio before trusting the rest.
package moduli
