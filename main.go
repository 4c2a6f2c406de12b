package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"runtime/pprof"
	"runtime/trace"

	"github.com/avamsi/ergo/assert"
)

var (
	file       = flag.String("file", "measurements.txt", "input file to summarize")
	workers    = flag.Int("workers", runtime.NumCPU(), "number of scan workers")
	slow       = flag.Bool("slow", false, "use the scanner pipeline instead of the mapped scan")
	cpuProfile = flag.String("cpuprofile", "", "write a CPU profile to this file")
	traceFile  = flag.String("trace", "", "write an execution trace to this file")
)

func main() {
	flag.Parse()

	if *cpuProfile != "" {
		assert.Nil(pprof.StartCPUProfile(assert.Ok(os.Create(*cpuProfile))))
		defer pprof.StopCPUProfile()
	}
	if *traceFile != "" {
		assert.Nil(trace.Start(assert.Ok(os.Create(*traceFile))))
		defer trace.Stop()
	}

	// One batch pass over a bounded file; the collector only gets in the way.
	debug.SetGCPercent(-1)

	run := summarize
	if *slow {
		run = referenceSummarize
	}
	// Any error anywhere in the pipeline aborts here, before a single byte of
	// summary is written.
	fmt.Println(assert.Ok(run(*file, *workers)))
}
