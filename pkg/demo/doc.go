// Package demo holds the two example generations: a structured object
// generated in JSON mode and a text answer to a text and image prompt.
// Each run issues exactly one request and writes only the result to the
// given writer.
package demo
