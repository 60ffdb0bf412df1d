// Package contact implements the contact form: validation of visitor input,
// asynchronous delivery of accepted submissions, and the HTTP endpoints that
// serve the form to Datastar, JSON and plain HTML clients.
//
// Validation is a pure function over FormData:
//
//	result := contact.Validate(contact.NewFormData(name, email, phone, message))
//	if !result.IsValid {
//		// result.Errors holds every message in rule order
//	}
//
// Delivery goes through a Submitter. SimulatedSubmitter waits a fixed delay
// and always succeeds; EmailSubmitter mails the submission through any
// email.EmailSender. Service.Submit runs the submitter in the background and
// returns an async.Future, refusing a second submission from the same sender
// while the first is in flight (see Locker).
//
// Router mounts the endpoints on a chi router.
package contact
