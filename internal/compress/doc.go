// Package compress implements the size-targeting convergence engine: the
// quality-degradation ladder over resolution, frame rate, and audio bitrate,
// and the per-rung iterative bitrate-correction loop that drives an external
// hardware encoder toward a fixed output byte budget.
package compress
