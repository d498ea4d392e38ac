// Package testsupport provides shared fixtures for wphelper tests: configs
// rooted in per-test temp directories and a scriptable wpctl stub.
package testsupport
