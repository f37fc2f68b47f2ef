package main

import (
	"errors"
	"fmt"
	"os"

	numvec "github.com/facebookincubator/go-numvec"
)

func main() {
	data := []int64{7, 1, 9, 3, 5}
	// size your array when you know ahead of time how many entries it
	// will hold.  Otherwise, just use New()
	config := numvec.SizeFor(len(data))
	arr := numvec.NewWithConfig[int64](config)
	defer func() { arr.Release() }()
	for _, v := range data {
		if err := arr.Append(v); err != nil {
			panic(err)
		}
	}

	// out of range values never make it into the array
	if err := arr.Append(1 << 40); errors.Is(err, numvec.ErrOverflow) {
		fmt.Printf("rejected: %s\n", err)
	}

	// structural operations hand back the handle to keep using
	arr, _ = arr.Insert(0, 0)
	v, arr, _ := arr.Pop(-1)
	fmt.Printf("popped %d, left with %s\n", v, arr)

	// binary search needs sorted contents, so rebuild in order
	sorted := numvec.New[int64](arr.Len())
	defer sorted.Release()
	for _, x := range []int64{0, 1, 3, 7, 9} {
		_ = sorted.Append(x)
	}
	for _, target := range []int64{3, 4, 9} {
		fmt.Printf("%d: position %d\n", target, sorted.BinarySearch(target))
	}

	// Dump the whole array in textual form
	sorted.DebugDump(os.Stdout)
}
