package benchmarks

import (
	"fmt"
	"testing"

	"github.com/EnvForge/envforge/pkg/resolve"
	"github.com/EnvForge/envforge/pkg/schema"
)

func BenchmarkPipelineRun(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		s := schema.Parse(exampleText(size), nil)
		b.Run(fmt.Sprintf("vars-%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				rctx := &resolve.Context{
					CurrentValues: make(map[string]string, size),
					Interactive:   false,
				}
				if _, err := resolve.NewPipeline().Run(s, rctx); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
