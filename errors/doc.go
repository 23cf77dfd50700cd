/*
Package errors provides semantic error types for the entitystate library.

The package defines the few failure scenarios the library has, each with a
sentinel that can be checked using the standard errors.Is() function or the
provided helper functions.

Common Errors:

	var (
	    ErrNotFound      = errors.New("not found")
	    ErrAlreadyExists = errors.New("already exists")
	    ErrInvalidInput  = errors.New("invalid input")
	    ErrInitFailed    = errors.New("specialization initialization failed")
	    ErrTypeMismatch  = errors.New("type mismatch")
	)

Usage:

	// Typed read from a shared map
	page, err := entitystate.ValueAs[int](dao.SearchCriteria(), "page")
	if err != nil {
	    if errors.IsNotFound(err) {
	        page = 1
	    } else {
	        return err
	    }
	}

	// A specialization whose default value cannot be built
	_, err := entitystate.StateFor[Broken](reg)
	if errors.IsInitFailed(err) {
	    // every later StateFor[Broken] on reg returns the same error
	}

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
