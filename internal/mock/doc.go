/*
Package mock contains mock implementations of various interfaces, intended
for use in unit-tests.

Mocks of Go standard-library interfaces are defined by a `.go` file in `./`,
which contains interface definitions that embed the interface to be mocked.
The mock implementation is then located in a directory under `./` of the same
name. As an example, mocks for the standard-library "io" package are defined
in `./io.go` and the generated output is found in `./io/io.go`.

The package name of all mock implementations follows the `mock_*` pattern,
where `*` is the original package name.
*/
package mock
