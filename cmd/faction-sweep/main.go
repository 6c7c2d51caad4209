package main

import (
	"flag"
	"fmt"
	"hash/fnv"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"dungenon/internal/sims/territory"
	"dungenon/pkg/faction"
	"dungenon/pkg/level"
)

type scenario struct {
	w, h    int
	kernel  faction.Kernel
	workers int
}

func (s scenario) String() string {
	return fmt.Sprintf("%5dx%-5d %-8s workers=%d", s.w, s.h, s.kernel, s.workers)
}

type scenarioResult struct {
	scenario
	steps    int
	elapsed  time.Duration
	checksum uint64
	alive    int
}

func (r scenarioResult) cellsPerSecond() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.w) * float64(r.h) * float64(r.steps) / r.elapsed.Seconds()
}

func main() {
	steps := flag.Int("steps", 50, "generations to simulate per scenario")
	jobs := flag.Int("jobs", 1, "scenarios run concurrently (timings are only comparable at 1)")
	cells := flag.Int("cells", 1<<20, "target cell count for the aspect ratio sweep")
	sizes := flag.String("sizes", "64,256,1024,2048", "comma separated square edge lengths")
	workerList := flag.String("workers", "1,0", "comma separated simulator worker counts (0 = GOMAXPROCS)")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	flag.Parse()

	edges, err := parseInts(*sizes)
	if err != nil {
		log.Fatalf("sizes: %v", err)
	}
	workerCounts, err := parseInts(*workerList)
	if err != nil {
		log.Fatalf("workers: %v", err)
	}
	if *steps <= 0 || *jobs <= 0 || *cells <= 0 {
		log.Fatal("steps, jobs and cells must be positive")
	}

	var shapes [][2]int
	for _, e := range edges {
		shapes = append(shapes, [2]int{e, e})
	}
	for _, ratio := range []int{4, 16, 64, 256} {
		shapes = append(shapes, aspectShape(*cells, ratio), aspectShape(*cells, -ratio))
	}

	var sets []scenario
	for _, shape := range shapes {
		for _, k := range []faction.Kernel{faction.KernelScalar, faction.KernelWindowed} {
			for _, n := range workerCounts {
				sets = append(sets, scenario{w: shape[0], h: shape[1], kernel: k, workers: n})
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d jobs, %d steps)\n", len(sets), *jobs, *steps)

	jobCh := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobCh {
				results <- runScenario(sc, *seed, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobCh <- sc
		}
		close(jobCh)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		fmt.Printf("%s  %12.0f cells/s  alive=%d\n", res.scenario, res.cellsPerSecond(), res.alive)
	}
	elapsed := time.Since(start)

	// Every kernel and worker count must land on the same map for a shape.
	mismatch := false
	byShape := map[[2]int]uint64{}
	for _, res := range all {
		key := [2]int{res.w, res.h}
		if sum, ok := byShape[key]; ok && sum != res.checksum {
			log.Printf("mismatch on %dx%d: %s disagrees", res.w, res.h, res.scenario)
			mismatch = true
		}
		byShape[key] = res.checksum
	}

	sort.Slice(all, func(i, j int) bool { return all[i].cellsPerSecond() > all[j].cellsPerSecond() })
	fmt.Printf("\nTop 5 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		fmt.Printf("%2d) %s  %12.0f cells/s\n", i+1, all[i].scenario, all[i].cellsPerSecond())
	}
	if mismatch {
		os.Exit(1)
	}
}

func runScenario(sc scenario, seed int64, steps int) scenarioResult {
	cfg := territory.DefaultConfig()
	cfg.Width = sc.w
	cfg.Height = sc.h
	cfg.Seed = seed
	cfg.Fill = territory.FillScatter
	cfg.Workers = sc.workers
	cfg.Kernel = sc.kernel

	world := territory.NewWithConfig(cfg)
	sim := world.Simulator()
	scratch := level.New[faction.Faction](sc.w, sc.h)

	start := time.Now()
	if err := sim.StepN(world.Level(), scratch, steps); err != nil {
		log.Fatalf("%s: %v", sc, err)
	}
	elapsed := time.Since(start)

	return scenarioResult{
		scenario: sc,
		steps:    steps,
		elapsed:  elapsed,
		checksum: checksum(world.Level().Cells()),
		alive:    len(world.Census().Owned),
	}
}

// aspectShape returns a shape of roughly cells cells whose width is ratio
// times its height. A negative ratio makes the grid tall instead.
func aspectShape(cells, ratio int) [2]int {
	tall := ratio < 0
	if tall {
		ratio = -ratio
	}
	short := 1
	for (short+1)*(short+1)*ratio <= cells {
		short++
	}
	long := max(cells/short, 1)
	if tall {
		return [2]int{short, long}
	}
	return [2]int{long, short}
}

func checksum(cells []faction.Faction) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, f := range cells {
		v := uint64(f)
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	return h.Sum64()
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("negative value %d", n)
		}
		out = append(out, n)
	}
	return out, nil
}
