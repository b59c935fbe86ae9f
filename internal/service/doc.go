// Package service holds the use cases of the birthday keeper: signing up,
// logging in and managing a user's contacts. Services validate input,
// scope every contact operation to an explicit [models.Session] and annotate
// loaded contacts with their birthday proximity.
package service
