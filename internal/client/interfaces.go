// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// PasswordPrompter asks the user for a file password.
type PasswordPrompter interface {
	// Prompt shows label and reads a password without echoing it.
	Prompt(label string) (string, error)
}
