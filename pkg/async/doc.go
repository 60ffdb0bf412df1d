// Package async provides a small generic Future for running a computation in
// its own goroutine and collecting the result later.
//
// Async starts the function and returns immediately. Callers then wait with
// Await, AwaitContext (stop waiting when a request goes away) or
// AwaitWithTimeout, or poll with IsComplete. Failed builds a future that is
// already completed with an error, which lets APIs that return futures reject
// work up front without spawning a goroutine.
//
// # Usage
//
//	future := async.Async(ctx, form, func(ctx context.Context, f Form) (Receipt, error) {
//	    return submitter.Submit(ctx, f)
//	})
//
//	receipt, err := future.AwaitContext(r.Context())
//
// A pre-cancelled context completes the future with the context error, and a
// panic inside the function is reported as an error wrapping ErrPanic.
package async
