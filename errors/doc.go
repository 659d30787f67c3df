/*
Package errors provides semantic error types for the dynamics library.

Every failure the catalog, hydrator and dispatcher report has a typed error
that matches a sentinel through the standard errors.Is() function, or through
the provided helper functions.

Sentinel Errors:

	var (
	    ErrNotFound            = errors.New("not found")
	    ErrAlreadyExists       = errors.New("already exists")
	    ErrInvalidInput        = errors.New("invalid input")
	    ErrParsing             = errors.New("annotation parsing failed")
	    ErrDuplicateAnnotation = errors.New("duplicate annotation")
	    ErrUnknownAccessor     = errors.New("unknown accessor")
	    ErrUndeclaredAccessor  = errors.New("undeclared accessor")
	    ErrMissingField        = errors.New("missing field")
	    ErrInvocation          = errors.New("invocation failed")
	)

Usage:

	v, err := engine.Call(country, "getId")
	if err != nil {
	    if errors.IsUndeclaredAccessor(err) {
	        // getId is not part of the declared accessors of Country
	    }
	    return err
	}

ParsingError and InvocationError carry the type, member, annotation keyword
and raw value involved and unwrap to their cause. None of these errors are
transient; they describe schema or programming mistakes and are never retried.
*/
package errors
