// Package pmc provides the register map of the SAM3X8E power management
// controller and a write-protection aware handle for gating peripheral and
// system clocks.
package pmc

import (
	"duecode-go/errcode"
	"duecode-go/mmio"
)

// Address is the PMC base on the SAM3X8E.
const Address = 0x400E_0600

// WriteProtectKey is "PMC" in ASCII. PMC_WPMR ignores writes without it.
const WriteProtectKey = 0x504D43

// Register types.
type (
	SystemClock         struct{} // PMC_SCER/SCDR/SCSR
	PeripheralClock0    struct{} // PMC_PCER0/PCDR0/PCSR0
	PeripheralClock1    struct{} // PMC_PCER1/PCDR1/PCSR1
	UTMIClock           struct{} // CKGR_UCKR
	MainOscillator      struct{} // CKGR_MOR
	MainClockFrequency  struct{} // CKGR_MCFR
	PLLA                struct{} // CKGR_PLLAR
	MasterClock         struct{} // PMC_MCKR
	USBClock            struct{} // PMC_USB
	ProgrammableClock   struct{} // PMC_PCKx
	Interrupt           struct{} // PMC_IER/IDR/IMR
	Status              struct{} // PMC_SR
	FastStartupMode     struct{} // PMC_FSMR
	FastStartupPolarity struct{} // PMC_FSPR
	FaultOutputClear    struct{} // PMC_FOCR
	WriteProtectMode    struct{} // PMC_WPMR
	WriteProtectStatus  struct{} // PMC_WPSR
	PeripheralControl   struct{} // PMC_PCR
)

// ---------------- Field encodings ----------------

type OnChipRCFrequency uint8

const (
	RC4MHz  OnChipRCFrequency = 0
	RC8MHz  OnChipRCFrequency = 1
	RC12MHz OnChipRCFrequency = 2
)

type OscillatorSelect uint8

const (
	OscOnChipRC OscillatorSelect = 0
	OscCrystal  OscillatorSelect = 1
)

type MasterClockSource uint8

const (
	MCKSlow MasterClockSource = 0
	MCKMain MasterClockSource = 1
	MCKPLLA MasterClockSource = 2
	MCKUPLL MasterClockSource = 3
)

type ProcessorPrescaler uint8

const (
	PresDiv1 ProcessorPrescaler = iota
	PresDiv2
	PresDiv4
	PresDiv8
	PresDiv16
	PresDiv32
	PresDiv64
	PresDiv3
)

type USBInput uint8

const (
	USBFromPLLA USBInput = 0
	USBFromUPLL USBInput = 1
)

type ProgrammableSource uint8

const (
	PCKSlow   ProgrammableSource = 0
	PCKMain   ProgrammableSource = 1
	PCKPLLA   ProgrammableSource = 2
	PCKUPLL   ProgrammableSource = 3
	PCKMaster ProgrammableSource = 4
)

type SlowClockSource uint8

const (
	SlowInternalRC SlowClockSource = 0
	SlowCrystal32k SlowClockSource = 1
)

type LowPowerMode uint8

const (
	LPWFIOrWFE LowPowerMode = 0
	LPWFE      LowPowerMode = 1
)

type PCRCommand uint8

const (
	PCRRead  PCRCommand = 0
	PCRWrite PCRCommand = 1
)

type PCRDivisor uint8

const (
	PCRDiv1 PCRDivisor = 0
	PCRDiv2 PCRDivisor = 1
	PCRDiv4 PCRDivisor = 2
)

// ---------------- Fields ----------------

var (
	USBOTGClock = mmio.Bit[SystemClock](5)
	PCK0        = mmio.Bit[SystemClock](8)
	PCK1        = mmio.Bit[SystemClock](9)
	PCK2        = mmio.Bit[SystemClock](10)
)

var (
	UPLLEnable    = mmio.Bit[UTMIClock](16)
	UPLLStartTime = mmio.Uint[UTMIClock, uint8](20, 4)
)

var (
	CrystalEnable     = mmio.Bit[MainOscillator](0)
	CrystalBypass     = mmio.Bit[MainOscillator](1)
	OnChipRCEnable    = mmio.Bit[MainOscillator](3)
	OnChipRCFreq      = mmio.Enum[MainOscillator](4, 3, RC4MHz, RC8MHz, RC12MHz)
	CrystalStartTime  = mmio.Uint[MainOscillator, uint8](8, 8)
	MainOscKey        = mmio.Uint[MainOscillator, uint8](16, 8)
	MainOscSelect     = mmio.Enum[MainOscillator](24, 1, OscOnChipRC, OscCrystal)
	ClockFailDetector = mmio.Bit[MainOscillator](25)
)

var (
	MainFrequency = mmio.Uint[MainClockFrequency, uint16](0, 16)
	MainFreqReady = mmio.Bit[MainClockFrequency](16)
)

var (
	PLLADivider    = mmio.Uint[PLLA, uint8](0, 8)
	PLLACount      = mmio.Uint[PLLA, uint8](8, 6)
	PLLAMultiplier = mmio.Uint[PLLA, uint16](16, 11)
	PLLAOne        = mmio.Bit[PLLA](29) // must be written as 1
)

var (
	MasterSource    = mmio.Enum[MasterClock](0, 2, MCKSlow, MCKMain, MCKPLLA, MCKUPLL)
	MasterPrescaler = mmio.Enum[MasterClock](4, 3,
		PresDiv1, PresDiv2, PresDiv4, PresDiv8, PresDiv16, PresDiv32, PresDiv64, PresDiv3)
	PLLADiv2 = mmio.Bit[MasterClock](12)
	UPLLDiv2 = mmio.Bit[MasterClock](13)
)

var (
	USBSource  = mmio.Enum[USBClock](0, 1, USBFromPLLA, USBFromUPLL)
	USBDivider = mmio.Uint[USBClock, uint8](8, 4)
)

var (
	PCKSource    = mmio.Enum[ProgrammableClock](0, 3, PCKSlow, PCKMain, PCKPLLA, PCKUPLL, PCKMaster)
	PCKPrescaler = mmio.Enum[ProgrammableClock](4, 3,
		PresDiv1, PresDiv2, PresDiv4, PresDiv8, PresDiv16, PresDiv32, PresDiv64)
)

var (
	IrqCrystalReady   = mmio.Bit[Interrupt](0)
	IrqPLLALock       = mmio.Bit[Interrupt](1)
	IrqMasterReady    = mmio.Bit[Interrupt](3)
	IrqUPLLLock       = mmio.Bit[Interrupt](6)
	IrqPCK0Ready      = mmio.Bit[Interrupt](8)
	IrqPCK1Ready      = mmio.Bit[Interrupt](9)
	IrqPCK2Ready      = mmio.Bit[Interrupt](10)
	IrqMainSelReady   = mmio.Bit[Interrupt](16)
	IrqOnChipRCReady  = mmio.Bit[Interrupt](17)
	IrqClockFailEvent = mmio.Bit[Interrupt](18)
)

var (
	StatCrystalReady   = mmio.Bit[Status](0)
	StatPLLALock       = mmio.Bit[Status](1)
	StatMasterReady    = mmio.Bit[Status](3)
	StatUPLLLock       = mmio.Bit[Status](6)
	StatSlowClock      = mmio.Enum[Status](7, 1, SlowInternalRC, SlowCrystal32k)
	StatPCK0Ready      = mmio.Bit[Status](8)
	StatPCK1Ready      = mmio.Bit[Status](9)
	StatPCK2Ready      = mmio.Bit[Status](10)
	StatMainSelReady   = mmio.Bit[Status](16)
	StatOnChipRCReady  = mmio.Bit[Status](17)
	StatClockFailEvent = mmio.Bit[Status](18)
	StatClockFailState = mmio.Bit[Status](19)
	StatFaultOutput    = mmio.Bit[Status](20)
)

var (
	FastStartupRTTAlarm = mmio.Bit[FastStartupMode](16)
	FastStartupRTCAlarm = mmio.Bit[FastStartupMode](17)
	FastStartupUSBAlarm = mmio.Bit[FastStartupMode](18)
	FastStartupLowPower = mmio.Enum[FastStartupMode](20, 1, LPWFIOrWFE, LPWFE)
)

// FastStartupInput is FSTT0..FSTT15 in PMC_FSMR.
func FastStartupInput(n uint8) mmio.Field[FastStartupMode, bool] {
	if n > 15 {
		errcode.Fatal(errcode.InvalidField, "pmc.FastStartupInput", "input out of range")
	}
	return mmio.Bit[FastStartupMode](n)
}

// FastStartupPolarityOf is FSTP0..FSTP15 in PMC_FSPR.
func FastStartupPolarityOf(n uint8) mmio.Field[FastStartupPolarity, bool] {
	if n > 15 {
		errcode.Fatal(errcode.InvalidField, "pmc.FastStartupPolarityOf", "input out of range")
	}
	return mmio.Bit[FastStartupPolarity](n)
}

var ClearFaultOutput = mmio.Bit[FaultOutputClear](0)

var (
	WPEnable = mmio.Bit[WriteProtectMode](0)
	WPKey    = mmio.Uint[WriteProtectMode, uint32](8, 24) // reads as 0
)

var (
	WPViolation       = mmio.Bit[WriteProtectStatus](0)
	WPViolationSource = mmio.Uint[WriteProtectStatus, uint16](8, 16)
)

var (
	PCRPeripheral = mmio.Uint[PeripheralControl, uint8](0, 6)
	PCRCmd        = mmio.Enum[PeripheralControl](12, 1, PCRRead, PCRWrite)
	PCRDiv        = mmio.Enum[PeripheralControl](16, 2, PCRDiv1, PCRDiv2, PCRDiv4)
	PCREnable     = mmio.Bit[PeripheralControl](28)
)

// ---------------- Block ----------------

// Block is the PMC register map, bit-exact to the SAM3X8E datasheet.
type Block struct {
	SystemClock         mmio.SRS[SystemClock]         // 0x000 SCER, 0x004 SCDR, 0x008 SCSR
	_                   [1]uint32                     // 0x00C
	PeripheralClock0    mmio.SRS[PeripheralClock0]    // 0x010 PCER0, 0x014 PCDR0, 0x018 PCSR0
	UTMIClock           mmio.RW[UTMIClock]            // 0x01C
	MainOscillator      mmio.RW[MainOscillator]       // 0x020
	MainClockFrequency  mmio.RO[MainClockFrequency]   // 0x024
	PLLA                mmio.RW[PLLA]                 // 0x028
	_                   [1]uint32                     // 0x02C
	MasterClock         mmio.RW[MasterClock]          // 0x030
	_                   [1]uint32                     // 0x034
	USBClock            mmio.RW[USBClock]             // 0x038
	_                   [1]uint32                     // 0x03C
	ProgrammableClock   [3]mmio.RW[ProgrammableClock] // 0x040..0x048
	_                   [5]uint32                     // 0x04C..0x05C
	Interrupt           mmio.SR[Interrupt]            // 0x060 IER, 0x064 IDR
	Status              mmio.RO[Status]               // 0x068
	InterruptMask       mmio.RO[Interrupt]            // 0x06C
	FastStartupMode     mmio.RW[FastStartupMode]      // 0x070
	FastStartupPolarity mmio.RW[FastStartupPolarity]  // 0x074
	FaultOutputClear    mmio.WO[FaultOutputClear]     // 0x078
	_                   [26]uint32                    // 0x07C..0x0E0
	WriteProtectMode    mmio.RW[WriteProtectMode]     // 0x0E4
	WriteProtectStatus  mmio.RO[WriteProtectStatus]   // 0x0E8
	_                   [5]uint32                     // 0x0EC..0x0FC
	PeripheralClock1    mmio.SRS[PeripheralClock1]    // 0x100 PCER1, 0x104 PCDR1, 0x108 PCSR1
	PeripheralControl   mmio.RW[PeripheralControl]    // 0x10C
}
