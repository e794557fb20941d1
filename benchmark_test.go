package reedsolomon_test

import (
	"math/rand"
	"testing"

	reedsolomon "github.com/barcodetools/reedsolomon"
)

var benchmarkConfigs = []struct {
	name      string
	primitive int
	nsym      int
	index     int
	dataLen   int
}{
	{"QRCode", reedsolomon.PolyQRCode, 10, 0, 16},
	{"DataMatrix", reedsolomon.PolyDataMatrix, 20, 1, 44},
	{"AztecData10", reedsolomon.PolyAztecData10, 51, 1, 100},
	{"AztecData12", reedsolomon.PolyAztecData12, 68, 1, 200},
}

func BenchmarkNew(b *testing.B) {
	for _, tc := range benchmarkConfigs {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, err := reedsolomon.New(tc.primitive, tc.nsym, tc.index)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	for _, tc := range benchmarkConfigs {
		b.Run(tc.name, func(b *testing.B) {
			enc, err := reedsolomon.New(tc.primitive, tc.nsym, tc.index)
			if err != nil {
				b.Fatal(err)
			}
			rng := rand.New(rand.NewSource(1))
			data := make([]int, tc.dataLen)
			for i := range data {
				data[i] = rng.Intn(enc.Field().Size() + 1)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				enc.Encode(data)
			}
		})
	}
}

func BenchmarkGetOrCreate(b *testing.B) {
	cache := reedsolomon.NewCache()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := cache.GetOrCreate(reedsolomon.PolyQRCode, 10, 0)
		if err != nil {
			b.Fatal(err)
		}
	}
}
