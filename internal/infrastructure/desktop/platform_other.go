//go:build !linux && !darwin

package desktop

func kernelRelease() string {
	return ""
}
