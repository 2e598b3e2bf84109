// Package vtsne implements variational t-SNE: a probabilistic low-dimensional
// embedding in which every point owns a diagonal Gaussian over its latent
// coordinates.
//
// One forward evaluation:
//  1. Samples every point with the reparameterization z = μ + σ·ε and
//     computes the regularizer KL(N(μ, σ²) ‖ N(0, I)) over the full set.
//  2. Builds the N×N Student-t kernel (1 + ‖z_k − z_l‖²)^-1 of that sample and
//     reduces it to the partition function Z (diagonal excluded).
//  3. Samples the rows of the batch pairs (i, j) and computes
//     q_ij = (1 + ‖z_i − z_j‖²)^-1 / Z.
//  4. Returns Σ p_ij·(log p_ij − log q_ij) + kldWeight·KLD.
//
// Z is recomputed over the entire point set on every call, so each step costs
// O(N²) memory and time regardless of batch size.
//
// Every step is an operation of the wrapped tensor.Backend; with an
// autodiff.AutodiffBackend the returned loss is differentiable with respect to
// both parameter tables:
//
//	backend := autodiff.New(cpu.New())
//	model, err := vtsne.New(backend, vtsne.Config{NumPoints: n})
//	...
//	backend.Tape().Clear()
//	backend.Tape().StartRecording()
//	loss, err := model.Forward(pij, i, j)
//	grads := autodiff.Backward(loss.Total, backend)
//	nn.AssignGrads(model.Parameters(), grads)
package vtsne
