package pmc

import (
	"testing"
	"unsafe"

	"duecode-go/errcode"
	"duecode-go/mmio"
)

func expectFatal(t *testing.T, want errcode.Code, fn func()) {
	t.Helper()
	defer func() {
		if got := errcode.Recovered(recover()); got != want {
			t.Fatalf("expected panic %q, got %q", want, got)
		}
	}()
	fn()
}

func TestBlockLayout(t *testing.T) {
	var b Block
	cases := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"SCER", unsafe.Offsetof(b.SystemClock), 0x000},
		{"PCER0", unsafe.Offsetof(b.PeripheralClock0), 0x010},
		{"CKGR_UCKR", unsafe.Offsetof(b.UTMIClock), 0x01C},
		{"CKGR_MOR", unsafe.Offsetof(b.MainOscillator), 0x020},
		{"CKGR_MCFR", unsafe.Offsetof(b.MainClockFrequency), 0x024},
		{"CKGR_PLLAR", unsafe.Offsetof(b.PLLA), 0x028},
		{"PMC_MCKR", unsafe.Offsetof(b.MasterClock), 0x030},
		{"PMC_USB", unsafe.Offsetof(b.USBClock), 0x038},
		{"PMC_PCK0", unsafe.Offsetof(b.ProgrammableClock), 0x040},
		{"PMC_IER", unsafe.Offsetof(b.Interrupt), 0x060},
		{"PMC_SR", unsafe.Offsetof(b.Status), 0x068},
		{"PMC_IMR", unsafe.Offsetof(b.InterruptMask), 0x06C},
		{"PMC_FSMR", unsafe.Offsetof(b.FastStartupMode), 0x070},
		{"PMC_FSPR", unsafe.Offsetof(b.FastStartupPolarity), 0x074},
		{"PMC_FOCR", unsafe.Offsetof(b.FaultOutputClear), 0x078},
		{"PMC_WPMR", unsafe.Offsetof(b.WriteProtectMode), 0x0E4},
		{"PMC_WPSR", unsafe.Offsetof(b.WriteProtectStatus), 0x0E8},
		{"PCER1", unsafe.Offsetof(b.PeripheralClock1), 0x100},
		{"PMC_PCR", unsafe.Offsetof(b.PeripheralControl), 0x10C},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("%s at %#x want %#x", c.name, c.got, c.want)
		}
	}
	if unsafe.Sizeof(b) != 0x110 {
		t.Fatalf("block size %#x", unsafe.Sizeof(b))
	}
}

func TestLockUnlockWrites(t *testing.T) {
	b := new(Block)
	u := New(b)

	l := u.Lock()
	if got := b.WriteProtectMode.Read(); got != WriteProtectKey<<8|1 {
		t.Fatalf("lock wrote %#x", got)
	}
	u = l.Unlock()
	if got := b.WriteProtectMode.Read(); got != WriteProtectKey<<8 {
		t.Fatalf("unlock wrote %#x", got)
	}

	// Same-state transitions re-write the register.
	b.WriteProtectMode.Write(0)
	u = u.Unlock()
	if got := b.WriteProtectMode.Read(); got != WriteProtectKey<<8 {
		t.Fatalf("unlock again wrote %#x", got)
	}
	l = u.Lock().Lock()
	if got := b.WriteProtectMode.Read(); got != WriteProtectKey<<8|1 {
		t.Fatalf("lock again wrote %#x", got)
	}
	_ = l
}

func TestTransitionConsumesHandle(t *testing.T) {
	b := new(Block)
	u := New(b)
	l := u.Lock()

	expectFatal(t, errcode.HandleConsumed, func() { u.EnablePeripheralClock(PIDPIOB) })
	expectFatal(t, errcode.HandleConsumed, func() { u.Lock() })
	expectFatal(t, errcode.HandleConsumed, func() { u.PeripheralClockEnabled(PIDPIOB) })

	u2 := l.Unlock()
	expectFatal(t, errcode.HandleConsumed, func() { l.Unlock() })
	expectFatal(t, errcode.HandleConsumed, func() { l.WriteProtectViolation() })

	u2.EnablePeripheralClock(PIDPIOB)
	if !u2.PeripheralClockEnabled(PIDPIOB) {
		t.Fatal("fresh handle must work")
	}
}

func TestPeripheralClockGating(t *testing.T) {
	b := new(Block)
	u := New(b)

	u.EnablePeripheralClock(PIDPIOB)
	if got := b.PeripheralClock0.Set.Last(); got != 1<<12 {
		t.Fatalf("PCER0=%#x", got)
	}
	u.EnablePeripheralClock(PIDRTT)
	if got := b.PeripheralClock0.Read(); got != 1<<12|1<<3 {
		t.Fatalf("PCSR0=%#x", got)
	}

	u.EnablePeripheralClock(PIDCAN1)
	if got := b.PeripheralClock1.Set.Last(); got != 1<<12 {
		t.Fatalf("PCER1=%#x", got)
	}
	u.EnablePeripheralClock(PIDTC5)
	if !u.PeripheralClockEnabled(PIDTC5) || !u.PeripheralClockEnabled(PIDCAN1) {
		t.Fatal("PCSR1 bits")
	}

	u.DisablePeripheralClock(PIDPIOB)
	if got := b.PeripheralClock0.Reset.Last(); got != 1<<12 {
		t.Fatalf("PCDR0=%#x", got)
	}
	if u.PeripheralClockEnabled(PIDPIOB) || !u.PeripheralClockEnabled(PIDRTT) {
		t.Fatal("disable must only clear its own bit")
	}
	u.DisablePeripheralClock(PIDCAN1)
	if got := b.PeripheralClock1.Reset.Last(); got != 1<<12 {
		t.Fatalf("PCDR1=%#x", got)
	}

	l := u.Lock()
	if !l.PeripheralClockEnabled(PIDTC5) {
		t.Fatal("locked view must read status")
	}
}

func TestPeripheralIdRange(t *testing.T) {
	u := New(new(Block))
	expectFatal(t, errcode.InvalidField, func() { u.EnablePeripheralClock(PIDResetController) })
	expectFatal(t, errcode.InvalidField, func() { u.EnablePeripheralClock(45) })
	expectFatal(t, errcode.InvalidField, func() { ClockField0(32) })
	expectFatal(t, errcode.InvalidField, func() { ClockField1(31) })
}

func TestSystemClocks(t *testing.T) {
	b := new(Block)
	u := New(b)

	u.EnableUSBOTG()
	u.EnableProgrammableClock(PCKOut1)
	if got := b.SystemClock.Read(); got != 1<<5|1<<9 {
		t.Fatalf("SCSR=%#x", got)
	}
	if !u.USBOTGEnabled() || !u.ProgrammableClockEnabled(PCKOut1) || u.ProgrammableClockEnabled(PCKOut0) {
		t.Fatal("SCSR decode")
	}
	u.DisableUSBOTG()
	u.DisableProgrammableClock(PCKOut1)
	if got := b.SystemClock.Read(); got != 0 {
		t.Fatalf("SCSR=%#x", got)
	}

	u.ConfigureProgrammableClock(PCKOut2, PCKMaster, PresDiv4)
	if got := b.ProgrammableClock[2].Read(); got != 4|2<<4 {
		t.Fatalf("PCK2=%#x", got)
	}
	expectFatal(t, errcode.InvalidField, func() { u.EnableProgrammableClock(3) })
}

func TestWriteProtectViolation(t *testing.T) {
	b := new(Block)
	b.WriteProtectStatus.Drive(0x0010_0001)
	v, src := New(b).WriteProtectViolation()
	if !v || src != 0x1000 {
		t.Fatalf("violation=%v source=%#x", v, src)
	}
}

func TestMainOscillatorFields(t *testing.T) {
	var b Block
	b.MainOscillator.SetFields(func(w mmio.Word[MainOscillator]) mmio.Word[MainOscillator] {
		w = MainOscKey.With(w, 0x37)
		w = CrystalEnable.With(w, true)
		w = CrystalStartTime.With(w, 8)
		return MainOscSelect.With(w, OscCrystal)
	})
	if got := b.MainOscillator.Read(); got != 0x37<<16|1|8<<8|1<<24 {
		t.Fatalf("MOR=%#x", got)
	}
	if OnChipRCFreq.Get(b.MainOscillator.Load()) != RC4MHz {
		t.Fatal("unset enum decodes to its zero variant")
	}
}

func TestFastStartupInputs(t *testing.T) {
	if FastStartupInput(15).Mask() != 1<<15 || FastStartupPolarityOf(0).Mask() != 1 {
		t.Fatal("FSTT/FSTP bit positions")
	}
	var b Block
	mmio.WriteField(&b.FastStartupMode, FastStartupInput(3), true)
	mmio.WriteField(&b.FastStartupMode, FastStartupRTTAlarm, true)
	if got := b.FastStartupMode.Read(); got != 1<<3|1<<16 {
		t.Fatalf("FSMR=%#x", got)
	}
	expectFatal(t, errcode.InvalidField, func() { FastStartupInput(16) })
	expectFatal(t, errcode.InvalidField, func() { FastStartupPolarityOf(16) })
}
