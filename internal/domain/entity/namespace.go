// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// NamespaceKey identifies a data partition. Every domain record and cache entry
// is owned by exactly one namespace: the user's id for personal planning data,
// or a workspace id for weddings managed through a planner workspace. Records
// under different namespace keys must never observe each other.
type NamespaceKey string

// UserNamespace derives the namespace key for a user's personal data.
func UserNamespace(userID uuid.UUID) NamespaceKey {
	return NamespaceKey(userID.String())
}

// WorkspaceNamespace derives the namespace key for a workspace's data.
func WorkspaceNamespace(workspaceID uuid.UUID) NamespaceKey {
	return NamespaceKey(workspaceID.String())
}

// String returns the string representation of the NamespaceKey.
func (n NamespaceKey) String() string {
	return string(n)
}

// IsZero reports whether the key is unset. A zero key means the caller is
// operating on the shared, unscoped legacy key space (anonymous local mode).
func (n NamespaceKey) IsZero() bool {
	return n == ""
}

// Scope identifies the data partition a request operates on: the acting user,
// plus the workspace the user has selected (zero when working on personal data).
type Scope struct {
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
}

// PersonalScope builds a scope for a user acting on their own data.
func PersonalScope(userID uuid.UUID) Scope {
	return Scope{UserID: userID}
}

// WorkspaceScope builds a scope for a user acting inside a workspace.
func WorkspaceScope(userID, workspaceID uuid.UUID) Scope {
	return Scope{UserID: userID, WorkspaceID: workspaceID}
}

// Namespace resolves the partition key for the scope: the workspace id when a
// workspace is selected, otherwise the user's own id.
func (s Scope) Namespace() NamespaceKey {
	if s.IsWorkspace() {
		return WorkspaceNamespace(s.WorkspaceID)
	}

	return UserNamespace(s.UserID)
}

// IsWorkspace reports whether the scope targets a workspace partition.
func (s Scope) IsWorkspace() bool {
	return s.WorkspaceID != uuid.Nil
}
