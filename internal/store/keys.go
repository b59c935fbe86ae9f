package store

const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"

	contactsKeyPrefix = "contacts_"
)

// ContactsKey returns the owner-scoped key of owner's contact list.
func ContactsKey(owner string) string {
	return contactsKeyPrefix + owner
}
