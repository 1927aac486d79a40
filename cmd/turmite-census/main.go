package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"sync"

	"turmites/internal/core"
	"turmites/internal/render"
	_ "turmites/internal/turmite"
)

// A census run drives every registered behavior headlessly for a fixed tick
// budget and reports how it behaved: how long it survived before hitting an
// edge, how much of the field it touched, and how much ended up filled.
type censusJob struct {
	behavior string
	seed     int64
}

type censusResult struct {
	censusJob
	ticks   uint64
	halted  bool
	touched int
	filled  int
	err     error
}

func main() {
	steps := flag.Int("steps", 20000, "tick budget per run")
	width := flag.Int("w", 160, "grid width")
	height := flag.Int("h", 160, "grid height")
	seeds := flag.Int("seeds", 3, "seeds per behavior")
	topology := flag.String("topology", "clamp", "edge policy: clamp or torus")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	behaviors := make([]string, 0, len(core.Sims()))
	for name := range core.Sims() {
		behaviors = append(behaviors, name)
	}
	sort.Strings(behaviors)

	jobs := make(chan censusJob)
	results := make(chan censusResult)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- run(job, *width, *height, *topology, *steps)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, behavior := range behaviors {
			for s := 0; s < *seeds; s++ {
				jobs <- censusJob{behavior: behavior, seed: int64(1 + s*7919)}
			}
		}
		close(jobs)
	}()

	var all []censusResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].behavior != all[j].behavior {
			return all[i].behavior < all[j].behavior
		}
		return all[i].seed < all[j].seed
	})

	total := *width * *height
	fmt.Printf("%-15s %-10s %-8s %-8s %-9s %-9s\n", "behavior", "seed", "ticks", "halted", "touched%", "filled%")
	for _, r := range all {
		if r.err != nil {
			log.Printf("%s seed=%d: %v", r.behavior, r.seed, r.err)
			continue
		}
		fmt.Printf("%-15s %-10d %-8d %-8v %-9.2f %-9.2f\n",
			r.behavior, r.seed, r.ticks, r.halted,
			100*float64(r.touched)/float64(total),
			100*float64(r.filled)/float64(total))
	}
}

func run(job censusJob, width, height int, topology string, steps int) censusResult {
	res := censusResult{censusJob: job}

	factory, ok := core.Sims()[job.behavior]
	if !ok {
		res.err = fmt.Errorf("unknown behavior %q", job.behavior)
		return res
	}
	sim, err := factory(map[string]string{
		"w":         strconv.Itoa(width),
		"h":         strconv.Itoa(height),
		"seed":      strconv.FormatInt(job.seed, 10),
		"topology":  topology,
		"randomize": "true",
	})
	if err != nil {
		res.err = err
		return res
	}

	recorder := &render.Recorder{}
	touched := make(map[[2]int]struct{})
	for i := 0; i < steps && sim.Active(); i++ {
		recorder.Reset()
		if err := sim.Tick(recorder); err != nil {
			res.err = err
			return res
		}
		res.ticks++
		for _, ev := range recorder.Events {
			touched[[2]int{ev.X, ev.Y}] = struct{}{}
		}
	}

	res.halted = !sim.Active()
	res.touched = len(touched)
	for _, c := range sim.Cells() {
		if c != 0 {
			res.filled++
		}
	}
	return res
}
