// Package utils provides small generic helpers shared by the sync features,
// such as splitting work into fixed-size chunks.
package utils
