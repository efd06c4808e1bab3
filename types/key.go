package types

// Item key construction.
//
// Every node must build the identical key string for the same logical test
// item; the key is the input to both partitioning algorithms, so two nodes
// producing different strings for the "same" item would disagree on
// ownership. All key construction therefore goes through these helpers.

// UnknownModule is used in place of a module name when the host framework
// cannot determine where an item was defined.
const UnknownModule = "unknown"

// FunctionKey returns the partitioning key for a bare test function.
//
// Parameters:
//   - module: Module or package path containing the function
//   - name: Function name
//
// Returns:
//   - string: Key of the form "<module>.<name>"
func FunctionKey(module, name string) string {
	if module == "" {
		module = UnknownModule
	}

	return module + "." + name
}

// MethodKey returns the partitioning key for a test method considered at
// per-item granularity.
//
// Parameters:
//   - module: Module or package path containing the class
//   - class: Class name
//   - method: Method name
//
// Returns:
//   - string: Key of the form "<module>.<class>.<method>"
func MethodKey(module, class, method string) string {
	if module == "" {
		module = UnknownModule
	}

	return module + "." + class + "." + method
}

// ClassKey returns the partitioning key for a test class considered at
// per-class granularity. The same namespaced form is used for ring hashing
// and for duration-data lookup.
//
// Parameters:
//   - module: Module or package path containing the class
//   - class: Class name
//
// Returns:
//   - string: Key of the form "<module>.<class>"
func ClassKey(module, class string) string {
	if module == "" {
		module = UnknownModule
	}

	return module + "." + class
}
