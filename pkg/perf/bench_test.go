package perf

import "testing"

// BenchmarkSuite runs every op over the default 50 000 rows, one
// sub-benchmark per op:
//
//	go test ./pkg/perf -bench Suite -benchmem
func BenchmarkSuite(b *testing.B) {
	ops, err := Suite(50_000)
	if err != nil {
		b.Fatal(err)
	}
	for _, op := range ops {
		b.Run(op.Name, func(b *testing.B) {
			b.ReportAllocs()
			op.Fn(b)
		})
	}
}
