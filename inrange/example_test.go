package inrange_test

import (
	"fmt"

	"github.com/vitalvas/propkit/chrono"
	"github.com/vitalvas/propkit/inrange"
)

func ExampleResolve() {
	iv, err := inrange.Resolve(chrono.OffsetDomain{}, inrange.Constraint{
		Min:    "12/01/2012T00:00:00.0+01:00",
		Max:    "12/31/2012T23:59:59.999999999+01:00",
		Format: "MM/dd/yyyy'T'HH:mm:ss.nxxx",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(iv.Low())
	fmt.Println(iv.High())
	// Output:
	// 2012-12-01T00:00:00+01:00
	// 2012-12-31T23:59:59.999999999+01:00
}

func ExampleKind() {
	_, err := inrange.Resolve(chrono.OffsetDomain{}, inrange.Constraint{
		Min:    "12/31/2012T23:59:59.999999999+01:00",
		Max:    "12/01/2012T00:00:00.0+01:00",
		Format: "MM/dd/yyyy'T'HH:mm:ss.nxxx",
	})

	fmt.Println(inrange.Kind(err))
	// Output: inverted-range
}
