package core

import (
	"strings"

	"github.com/marstr/collection"
)

// CollectionStringSlice is a wrapper type for []string
type CollectionStringSlice []string

// Enumerate will create an enumerator for a []string
func (sl CollectionStringSlice) Enumerate() collection.Enumerator {
	var interfaceSlice = make([]interface{}, len(sl))
	for i, d := range sl {
		interfaceSlice[i] = d
	}
	return collection.AsEnumerable(interfaceSlice...).Enumerate(nil)
}

// JoinEnumerator drains an enumerator of strings and joins them with sep
func JoinEnumerator(e collection.Enumerator, sep string) string {
	var parts []string
	for item := range e {
		parts = append(parts, item.(string))
	}
	return strings.Join(parts, sep)
}
