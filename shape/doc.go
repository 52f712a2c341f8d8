/*
Package shape describes the layout of a heterogeneous sequence. A Shape is the
ordered list of element types held by a sequence, together with the size of
each element and its cumulative offset in a packed layout:

	offset(k) = size(t0) + size(t1) + ... + size(t(k-1))

A Shape is computed entirely from the element types; it never depends on the
values stored. Shapes are immutable. Append returns a new Shape and leaves its
receiver untouched.

The package also defines Empty, the zero-size marker returned by positional
access past the end of a sequence, and Serialize, which renders a sequence as
JSON.
*/
package shape
