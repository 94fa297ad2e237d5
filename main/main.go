package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/metastr"
	"github.com/rawbytedev/metastr/pkg/namedtuple"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	names := namedtuple.NewNames(
		metastr.New("prefix"), metastr.New("body"), metastr.New("count"),
	)
	src := metastr.U16("滑稽 mixed ascii \U0001F600")
	for i := 0; i < 10000; i++ {
		body := metastr.ToUTF8[byte](src)
		joined := metastr.Concat(metastr.New("msg: "), body)
		rec := namedtuple.Make(names, "msg: ", joined.Text(), i)
		_ = rec.GetText("body")
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
