// Package validator provides small, composable validation rules.
//
// A Rule pairs a boolean Check with error metadata (field, message and a
// translation key). Rules are evaluated with Apply, which collects every
// failure, in the order the rules were given, into a ValidationErrors slice
// that satisfies the error interface.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("email", email),
//	    validator.ValidEmail("email", email).When(email != ""),
//	    validator.ValidPhone("phone", phone).When(phone != ""),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, msg := range verrs.Messages() {
//	        // ...
//	    }
//	}
//
// Messages can be replaced per call site with Rule.WithMessage while keeping
// the translation key intact.
//
// The package holds no state and is safe for concurrent use.
package validator
