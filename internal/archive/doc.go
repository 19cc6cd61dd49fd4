// Package archive moves previously written exports out of the way.
package archive
