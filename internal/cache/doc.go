// Package cache records which escape outputs are current so unchanged inputs can be skipped.
package cache
