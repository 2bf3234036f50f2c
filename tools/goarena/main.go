package main

import "fmt"
import "os"
import "time"
import "flag"

import "github.com/bnclabs/goarena/lib"
import "github.com/bnclabs/goarena/malloc"
import "github.com/bnclabs/golog"
import hm "github.com/dustin/go-humanize"
import jsoniter "github.com/json-iterator/go"

var options struct {
	n         int
	blocksize int64
	capacity  int64
	allocator string
	scenarios string
	report    string
	log       string
}

func argParse() {
	flag.IntVar(&options.n, "n", 1000000,
		"number of allocations per scenario")
	flag.Int64Var(&options.blocksize, "blocksize", malloc.Defaultblocksize,
		"arena block size in bytes")
	flag.Int64Var(&options.capacity, "capacity", 0,
		"arena capacity in bytes, 0 means free system memory")
	flag.StringVar(&options.allocator, "allocator", "malloc",
		"allocator backend for arenas, malloc or mmap")
	flag.StringVar(&options.scenarios, "scenarios", "all",
		"all, or comma separated list of "+
			"simple,sizes,fragment,vector,tree,batch,memory")
	flag.StringVar(&options.report, "report", "",
		"dump scenario timings as json to file")
	flag.StringVar(&options.log, "log", "",
		"log level for arena components, info or debug")
	flag.Parse()
}

var scenarios = []struct {
	name string
	fn   func()
}{
	{"simple", benchSimple},
	{"sizes", benchSizes},
	{"fragment", benchFragment},
	{"vector", benchVector},
	{"tree", benchTree},
	{"batch", benchBatch},
	{"memory", benchMemory},
}

func main() {
	argParse()
	setuplog()

	names := []string{}
	for _, scenario := range scenarios {
		names = append(names, scenario.name)
	}
	if options.scenarios != "all" {
		names = lib.Parsecsv(options.scenarios)
	}
	fmsg := "==== goarena benchmarks (n:%v blocksize:%v allocator:%v) ====\n"
	fmt.Printf(fmsg, options.n, options.blocksize, options.allocator)
	for _, name := range names {
		fn := findscenario(name)
		if fn == nil {
			fmt.Printf("unknown scenario %v\n", name)
			os.Exit(1)
		}
		fn()
	}
	fmt.Println("\n==== benchmarks complete ====")
	if options.report != "" {
		writereport(options.report)
	}
}

func findscenario(name string) func() {
	for _, scenario := range scenarios {
		if scenario.name == name {
			return scenario.fn
		}
	}
	return nil
}

func setuplog() {
	if options.log == "" {
		return
	}
	logsetts := map[string]interface{}{
		"log.level": options.log,
		"log.file":  "",
	}
	log.SetLogger(nil, logsetts)
	malloc.LogComponents("all")
}

func newarena(name string, blocksize int64) *malloc.Arena {
	setts := malloc.Defaultsettings()
	setts["blocksize"] = blocksize
	setts["allocator"] = options.allocator
	if options.capacity > 0 {
		setts["capacity"] = options.capacity
	}
	return malloc.NewArena(name, setts)
}

type timing struct {
	Scenario string `json:"scenario"`
	Name     string `json:"name"`
	Took     string `json:"took"`
	Nanos    int64  `json:"nanos"`
}

var timings []timing

func timeit(scenario, name string, fn func()) time.Duration {
	now := time.Now()
	fn()
	took := time.Since(now)
	fmt.Printf("  %-28s: %12v\n", name, took)
	timings = append(timings, timing{
		Scenario: scenario, Name: name, Took: took.String(), Nanos: int64(took),
	})
	return took
}

func printarena(arena *malloc.Arena) {
	capacity, heap, alloc, overhead := arena.Info()
	fmsg := "  arena{cap:%v heap:%v alloc:%v overhead:%v blocks:%v utilz:%.2f%%}\n"
	fmt.Printf(fmsg,
		hm.Bytes(uint64(capacity)), hm.Bytes(uint64(heap)),
		hm.Bytes(uint64(alloc)), hm.Bytes(uint64(overhead)),
		arena.Blocks(), arena.Utilization()*100)
}

func writereport(file string) {
	report := map[string]interface{}{
		"finishedat": time.Now().Format(time.RFC3339),
		"n":          options.n,
		"blocksize":  options.blocksize,
		"allocator":  options.allocator,
		"timings":    timings,
	}
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(file, data, 0644); err != nil {
		panic(err)
	}
	fmt.Printf("timings dumped to %v\n", file)
}
