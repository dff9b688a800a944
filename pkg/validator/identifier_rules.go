package validator

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

const invalidIDMessage = "%{key} is not a valid id."

// objectIDHexPattern matches the 24 hexadecimal character form of a bson.ObjectID.
const objectIDHexPattern = `^[0-9a-fA-F]{24}$`

// ObjectID creates a rule accepting a bson.ObjectID (or a pointer to one) or
// its 24 hexadecimal character string form, surrounding whitespace trimmed.
// Every failure renders as "<key> is not a valid id.", whichever branch was tried.
// The value passes through in the form it was given.
func ObjectID() Rule {
	return Alternatives(
		Object().Type(bson.ObjectID{}),
		String().Trim().Pattern(objectIDHexPattern),
	).Messages(Messages{
		"object": {
			"base": invalidIDMessage,
			"type": invalidIDMessage,
		},
		"string": {
			"base":  invalidIDMessage,
			"regex": invalidIDMessage,
		},
		"any": {
			"empty": invalidIDMessage,
		},
	})
}
