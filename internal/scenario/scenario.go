// Package scenario provides scripted workloads that drive the activity
// logger the way real store operations would: builds with log lines,
// downloads with byte progress, store optimisation and path
// verification. The demo command replays them against whichever logger
// is installed.
package scenario

import (
	"context"
	"math/rand/v2"
	"slices"
	"time"
)

// Scenario is a named, replayable workload.
type Scenario struct {
	Name        string
	Description string

	run func(ctx context.Context, pace *Pace, rng *rand.Rand) error
}

// Run replays the workload. The rng only jitters sizes and delays;
// the shape of the workload is fixed per scenario.
func (s Scenario) Run(ctx context.Context, pace *Pace, rng *rand.Rand) error {
	return s.run(ctx, pace, rng)
}

// Pace scales the simulated latency of scenario steps. A zero Unit
// removes all delays, which acceptance tests rely on.
type Pace struct {
	Unit time.Duration
}

// Sleep pauses for n units, returning early with the context's error
// when the context is canceled.
func (p *Pace) Sleep(ctx context.Context, n int) error {
	if p == nil || p.Unit <= 0 || n <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(time.Duration(n) * p.Unit)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var scenarios = []Scenario{
	{Name: "build", Description: "compile a small package set with live build logs", run: runBuild},
	{Name: "fetch", Description: "download and copy store paths with byte progress", run: runFetch},
	{Name: "optimise", Description: "hard-link duplicate files to reclaim space", run: runOptimise},
	{Name: "verify", Description: "check path integrity, flagging corrupted and untrusted paths", run: runVerify},
	{Name: "mixed", Description: "run builds, fetches and optimisation concurrently", run: runMixed},
}

// All returns every scenario in display order.
func All() []Scenario {
	return slices.Clone(scenarios)
}

// Lookup finds a scenario by name.
func Lookup(name string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
