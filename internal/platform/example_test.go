package platform_test

import (
	"context"
	"fmt"
	"log"

	"github.com/ZebulonRouseFrantzich/aaptkit/internal/platform"
)

func ExampleDetector_Detect() {
	detector := platform.NewDetector()
	info, err := detector.Detect(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Platform: %s (%s, %d bit)\n", info.Label(), info.Class(), info.Bits)
}

func ExampleInfo_Class() {
	info := &platform.Info{OS: "freebsd", Arch: "amd64"}

	fmt.Println(info.Class())
	// Output: unix
}

func ExampleInfo_Architecture() {
	// An x86 build running under emulation on an ARM Windows host
	info := &platform.Info{
		OS:       "windows",
		Arch:     "386",
		HostArch: "arm64",
	}

	fmt.Println(info.Architecture(), info.Is64Bit())
	// Output: arm64 true
}
