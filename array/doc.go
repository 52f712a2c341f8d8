/*
Package array implements a heterogeneous, append-only sequence packed into a
single fixed-size byte buffer.

An Array is created with its capacity in bytes and filled by pushing values:

	a, err := array.New(28).MustPush(int32(1)).Push(3.0)

Values are stored back to back with no padding: the value at position k starts
at the sum of the sizes of the values before it. The layout is described by
the array's shape.Shape. No value is allocated separately, so an Array needs
no teardown.

Only plain data can be stored: booleans, numbers, and arrays or structs made
of them. Types holding pointers (strings, slices, maps, pointers, interfaces,
functions, channels) are rejected with ErrNotPlainData, since their bytes
would hide references from the garbage collector.

Push consumes its receiver on success, like list.List. An Array is not safe
for concurrent use.
*/
package array
