package fptree

type NotInitialized struct{}

func (e *NotInitialized) Error() string {
	return "fp-tree has not been built yet"
}

type AlreadyBuilt struct{}

func (e *AlreadyBuilt) Error() string {
	return "fp-tree has already been built"
}
