// Package deco provides the core decompression-schedule engine.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - profile.go: Stop/Phase/ProfilePoint and the profile builder that turns a
//     user plan into the simulation phase stream
//   - tissue.go: per-compartment inert-gas state and phase-stream loading
//   - scheduler.go: the generic 3 m stop loop that drives ascent against any
//     algorithm's CanAscend predicate
//
// # Architecture
//
// The deco package defines the Model contract and shared machinery; algorithm
// implementations live in sub-packages:
//   - deco/zhl/: Bühlmann ZH-L variants (16A/16B/16C/12/6/8ADT)
//   - deco/bubble/: VPM-B and RGBM dual-phase bubble models
//   - deco/classic/: Haldane, Workman, Thalmann, DCIEM
//   - deco/tables/: DSAT, US Navy Rev 7 and BSAC '88 published tables
//   - deco/planfile/: YAML plan-file loading for the CLI
//
// Sub-packages register their implementations via init() functions that call
// RegisterModel; deco/zhl additionally sets the NewGFCeilingFunc factory used
// by the ceiling timeline.
//
// # Key Interfaces
//
// The extension points are small interfaces:
//   - Model: run a phase stream, produce deco stops and tissue state
//   - AscentLimiter: decide whether tissues allow the next 3 m of ascent
//   - TissueUpdater: advance compartment loadings (Schreiner by default,
//     asymmetric for Thalmann, serial for DCIEM)
//
// A single driver invocation (RunPlan) is purely synchronous and stateless:
// inputs are read-only, tissue state is owned by the running invocation, and
// the result is constructed fresh.
package deco
