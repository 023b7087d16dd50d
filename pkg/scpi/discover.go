package scpi

import (
	"context"
	"fmt"

	"github.com/google/gousb"
)

// ControllerInfo describes a detected USB-GPIB controller candidate.
type ControllerInfo struct {
	Description string
	VendorID    uint16
	ProductID   uint16
}

// Label returns a user-friendly description for the controller.
func (c ControllerInfo) Label() string {
	if c.Description != "" {
		return fmt.Sprintf("%s (%04X:%04X)", c.Description, c.VendorID, c.ProductID)
	}
	return fmt.Sprintf("Controller %04X:%04X", c.VendorID, c.ProductID)
}

type knownUSBController struct {
	VendorID    uint16
	ProductID   uint16
	Description string
}

// VID/PID pairs of GPIB controllers and the serial bridges the common clones
// are built on.
var knownGPIBControllers = []knownUSBController{
	{VendorID: 0x0403, ProductID: 0x6001, Description: "Prologix GPIB-USB (FTDI)"},
	{VendorID: 0x1a86, ProductID: 0x7523, Description: "AR488 clone (CH340)"},
	{VendorID: 0x2341, ProductID: 0x0043, Description: "AR488 (Arduino Uno)"},
	{VendorID: 0x2341, ProductID: 0x8036, Description: "AR488 (Arduino Leonardo)"},
}

// Discover enumerates connected USB devices that match known GPIB controller
// VID/PID pairs. An empty result just means no controller is plugged in; LAN
// operation needs none.
func Discover(ctx context.Context) ([]ControllerInfo, error) {
	var results []ControllerInfo
	usb := gousb.NewContext()
	defer usb.Close()

	_, err := usb.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		if info, ok := classifyUSBDevice(desc); ok {
			results = append(results, info)
		}
		return false
	})
	if err != nil && err != gousb.ErrorAccess {
		return results, err
	}
	return results, nil
}

func classifyUSBDevice(desc *gousb.DeviceDesc) (ControllerInfo, bool) {
	for _, known := range knownGPIBControllers {
		if uint16(desc.Vendor) == known.VendorID && uint16(desc.Product) == known.ProductID {
			return ControllerInfo{
				Description: known.Description,
				VendorID:    known.VendorID,
				ProductID:   known.ProductID,
			}, true
		}
	}
	return ControllerInfo{}, false
}
