// Package testsupport holds fixtures and helpers shared by package tests.
package testsupport
