// Package utils holds small helpers shared by the config loader and the
// backends: resolving paths against the install dir and closing files.
//
//	lib := utils.GetAbsolutePath("lib/libsettings.sh", "/opt/disk2iso")
//	// /opt/disk2iso/lib/libsettings.sh
package utils
