// Package report renders region statistics for the escape command.
package report
