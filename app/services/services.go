// Package services holds the business logic between the API boundary and
// the document store gateway. Every authenticated operation starts with
// auth.RequireIdentity; validation errors are raised before any write.
package services

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/pkg/apperr"
)

// parseObjectID coerces a request string into a store identifier.
func parseObjectID(s, what string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, apperr.InvalidArgument(fmt.Sprintf("invalid %s %q", what, s))
	}
	return oid, nil
}
