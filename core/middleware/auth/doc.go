// Package auth protects routes with a static API key.
package auth
