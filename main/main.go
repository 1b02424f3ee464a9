package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	flag "github.com/spf13/pflag"

	rcslice "github.com/Phlosioneer/rc-slice2"
	"github.com/Phlosioneer/rc-slice2/pkg/varframe"
)

var (
	iterations = flag.IntP("iterations", "n", 10000, "encode/decode cycles to run")
	memProfile = flag.String("memprofile", "mem.prof", "heap profile output path")
	listenAddr = flag.String("http", "localhost:6060", "pprof listen address")
)

func main() {
	flag.Parse()
	go func() {
		log.Println(http.ListenAndServe(*listenAddr, nil))
	}()
	f, err := os.Create(*memProfile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	payloads := [][]byte{
		[]byte("short"),
		make([]byte, 512),
		make([]byte, 4096),
	}
	pool := rcslice.DefaultBufferPool()
	var enc varframe.Encoder
	var dec varframe.Decoder
	for i := 0; i < *iterations; i++ {
		batch, err := enc.EncodeAll(payloads, 0)
		if err != nil {
			log.Fatal(err)
		}
		views, err := dec.DecodeAll(batch)
		if err != nil {
			log.Fatal(err)
		}
		for _, v := range views {
			half, ok := v.SplitOffBefore(v.Len() / 2)
			if ok {
				_ = rcslice.Sum64(half)
				half.Free()
			}
			_ = rcslice.Sum64(v)
			v.Free()
		}
		scratch := rcslice.PooledBytes(pool, 4096)
		scratch.Free()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
