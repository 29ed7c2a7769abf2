package benchmarks

import (
	"fmt"
	"strings"
	"testing"

	"github.com/EnvForge/envforge/pkg/schema"
)

// exampleText builds an annotated example file with n variables cycling
// through the directive tags.
func exampleText(n int) string {
	tags := []string{
		"# @placeholder",
		"# @default:8080",
		"# @prompt",
		"# @copy:VAR_0",
		"# @local-only",
	}

	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "# Variable number %d\n", i)
		sb.WriteString(tags[i%len(tags)] + "\n")
		fmt.Fprintf(&sb, "VAR_%d=value-%d\n\n", i, i)
	}
	return sb.String()
}

func BenchmarkParse(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		text := exampleText(size)
		b.Run(fmt.Sprintf("vars-%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				schema.Parse(text, nil)
			}
		})
	}
}

func BenchmarkMergeSchemas(b *testing.B) {
	root := schema.Parse(exampleText(200), nil)
	app := schema.Parse(exampleText(100), nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		schema.MergeSchemas(root, app)
	}
}
