package scenario

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/schmitthub/pawgress/pkg/actlog"
)

var buildTargets = []string{"glibc-2.39", "openssl-3.3.1", "curl-8.8.0", "jq-1.7", "hello-2.12"}

var buildSteps = []string{
	"unpacking sources",
	"patching sources",
	"configuring",
	"checking for gcc... yes",
	"building",
	"running tests",
	"installing",
	"post-installation fixup",
}

// runBuild compiles a fixed package set one at a time. Each package is
// its own labeled activity emitting build log lines, while a single
// aggregate tracks the done/running totals.
func runBuild(ctx context.Context, pace *Pace, rng *rand.Rand) error {
	actlog.Infof("building %d packages", len(buildTargets))

	agg := actlog.StartActivity(actlog.ActivityBuild, "")
	defer agg.Stop()

	total := uint64(len(buildTargets))
	var done uint64
	for _, name := range buildTargets {
		b := actlog.StartActivity(actlog.ActivityUnknown, "building "+name)
		agg.Progress(done, total, 1, 0)
		for _, step := range buildSteps {
			if err := pace.Sleep(ctx, 1+rng.IntN(3)); err != nil {
				b.Stop()
				return err
			}
			b.Result(actlog.ResultBuildLogLine, actlog.StringField(step))
		}
		b.Stop()
		done++
		agg.Progress(done, total, 0, 0)
	}
	return nil
}

// runFetch copies a handful of store paths, each backed by a chunked
// download. Expected totals are declared up front on a planning
// activity so the status line shows x/y from the first frame.
func runFetch(ctx context.Context, pace *Pace, rng *rand.Rand) error {
	paths := []struct {
		name string
		base uint64
	}{
		{"bash-5.2.32", 1 << 20},
		{"coreutils-9.5", 6 << 20},
		{"zlib-1.3.1", 384 << 10},
		{"ncurses-6.4", 3 << 20},
	}

	sizes := make([]uint64, len(paths))
	var totalBytes uint64
	for i, p := range paths {
		sizes[i] = p.base + rng.Uint64N(p.base/4)
		totalBytes += sizes[i]
	}

	actlog.Infof("fetching %d paths", len(paths))

	plan := actlog.StartActivity(actlog.ActivityUnknown, "")
	defer plan.Stop()
	plan.SetExpected(actlog.ActivityCopyPaths, uint64(len(paths)))
	plan.SetExpected(actlog.ActivityDownload, totalBytes)

	copies := actlog.StartActivity(actlog.ActivityCopyPaths, "")
	defer copies.Stop()

	totalPaths := uint64(len(paths))
	var copied uint64
	for i, p := range paths {
		copies.Progress(copied, totalPaths, 1, 0)

		cp := actlog.StartActivity(actlog.ActivityCopyPath, "copying "+p.name)
		dl := actlog.StartActivity(actlog.ActivityDownload, "")
		size := sizes[i]
		chunk := size/8 + 1
		for got := uint64(0); got < size; {
			if err := pace.Sleep(ctx, 1); err != nil {
				dl.Stop()
				cp.Stop()
				return err
			}
			got = min(got+chunk, size)
			dl.Progress(got, size, 1, 0)
			cp.Progress(got, size, 1, 0)
		}
		dl.Stop()
		cp.Stop()

		copied++
		copies.Progress(copied, totalPaths, 0, 0)
	}
	return nil
}

// runOptimise walks a batch of store paths and hard-links duplicates,
// reporting the reclaimed bytes per linked file.
func runOptimise(ctx context.Context, pace *Pace, rng *rand.Rand) error {
	opt := actlog.StartActivity(actlog.ActivityOptimiseStore, "optimising the store")
	defer opt.Stop()

	total := uint64(24 + rng.IntN(16))
	for done := uint64(0); done < total; done++ {
		opt.Progress(done, total, 1, 0)
		if err := pace.Sleep(ctx, 1); err != nil {
			return err
		}
		if rng.IntN(3) > 0 {
			opt.Result(actlog.ResultFileLinked, actlog.UintField(4096+rng.Uint64N(2<<20)))
		}
	}
	opt.Progress(total, total, 0, 0)
	return nil
}

// runVerify checks a fixed path list. Paths 2 and 5 are always
// corrupted and path 6 always unsigned so the failure clauses render
// regardless of seed.
func runVerify(ctx context.Context, pace *Pace, rng *rand.Rand) error {
	targets := []string{
		"glibc-2.39", "openssl-3.3.1", "curl-8.8.0", "jq-1.7",
		"hello-2.12", "bash-5.2.32", "coreutils-9.5", "zlib-1.3.1",
	}

	actlog.Infof("checking %d store paths", len(targets))

	v := actlog.StartActivity(actlog.ActivityVerifyPaths, "verifying store paths")
	defer v.Stop()

	total := uint64(len(targets))
	for i, name := range targets {
		v.Progress(uint64(i), total, 1, 0)
		if err := pace.Sleep(ctx, 1+rng.IntN(2)); err != nil {
			return err
		}
		switch i {
		case 2, 5:
			v.Result(actlog.ResultCorruptedPath)
			actlog.Warnf("path '%s' was modified! expected hash differs", name)
		case 6:
			v.Result(actlog.ResultUntrustedPath)
			actlog.Warnf("path '%s' is unsigned", name)
		}
	}
	v.Progress(total, total, 0, 0)
	return nil
}

// runMixed runs the build, fetch and optimise workloads concurrently,
// each with an rng split off the parent so results stay reproducible
// per seed.
func runMixed(ctx context.Context, pace *Pace, rng *rand.Rand) error {
	jobs := []func(context.Context, *Pace, *rand.Rand) error{runBuild, runFetch, runOptimise}
	actlog.Infof("running %d jobs", len(jobs))

	var wg sync.WaitGroup
	errs := make(chan error, len(jobs))
	for _, job := range jobs {
		sub := rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := job(ctx, pace, sub); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	return <-errs
}
