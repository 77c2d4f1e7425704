// Package platform provides cross-platform filesystem helpers. Generated
// shell scripts are marked executable through Chmod, which is a no-op on
// Windows.
package platform
