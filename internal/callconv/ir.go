package callconv

import (
	"strconv"
	"strings"
)

// irKeywords holds the LLVM assembly keyword for each convention that has
// one. Conventions missing here are spelled "cc N".
var irKeywords = map[CallingConvention]string{
	C:                      "ccc",
	Fast:                   "fastcc",
	Cold:                   "coldcc",
	GHC:                    "ghccc",
	WebKit_JS:              "webkit_jscc",
	AnyReg:                 "anyregcc",
	PreserveMost:           "preserve_mostcc",
	PreserveAll:            "preserve_allcc",
	Swift:                  "swiftcc",
	CXX_FAST_TLS:           "cxx_fast_tlscc",
	Tail:                   "tailcc",
	CFGuard_Check:          "cfguard_checkcc",
	SwiftTail:              "swifttailcc",
	X86_StdCall:            "x86_stdcallcc",
	X86_FastCall:           "x86_fastcallcc",
	ARM_APCS:               "arm_apcscc",
	ARM_AAPCS:              "arm_aapcscc",
	ARM_AAPCS_VFP:          "arm_aapcs_vfpcc",
	MSP430_INTR:            "msp430_intrcc",
	X86_ThisCall:           "x86_thiscallcc",
	PTX_Kernel:             "ptx_kernel",
	PTX_Device:             "ptx_device",
	SPIR_FUNC:              "spir_func",
	SPIR_KERNEL:            "spir_kernel",
	Intel_OCL_BI:           "intel_ocl_bicc",
	X86_64_SysV:            "x86_64_sysvcc",
	Win64:                  "win64cc",
	X86_VectorCall:         "x86_vectorcallcc",
	X86_INTR:               "x86_intrcc",
	AVR_INTR:               "avr_intrcc",
	AVR_SIGNAL:             "avr_signalcc",
	AMDGPU_VS:              "amdgpu_vs",
	AMDGPU_GS:              "amdgpu_gs",
	AMDGPU_PS:              "amdgpu_ps",
	AMDGPU_CS:              "amdgpu_cs",
	AMDGPU_KERNEL:          "amdgpu_kernel",
	X86_RegCall:            "x86_regcallcc",
	AMDGPU_HS:              "amdgpu_hs",
	AMDGPU_LS:              "amdgpu_ls",
	AMDGPU_ES:              "amdgpu_es",
	AArch64_VectorCall:     "aarch64_vector_pcs",
	AArch64_SVE_VectorCall: "aarch64_sve_vector_pcs",
	AMDGPU_Gfx:             "amdgpu_gfx",
	M68k_INTR:              "m68k_intrcc",
	AArch64_SME_ABI_Support_Routines_PreserveMost_From_X0: "aarch64_sme_preservemost_from_x0",
	AArch64_SME_ABI_Support_Routines_PreserveMost_From_X2: "aarch64_sme_preservemost_from_x2",
	AMDGPU_CS_Chain:         "amdgpu_cs_chain",
	AMDGPU_CS_ChainPreserve: "amdgpu_cs_chain_preserve",
}

var irKeywordIndex = buildIRKeywordIndex()

func buildIRKeywordIndex() map[string]CallingConvention {
	idx := make(map[string]CallingConvention, len(irKeywords))
	for cc, kw := range irKeywords {
		idx[kw] = cc
	}
	return idx
}

// IRKeyword returns how cc is written in LLVM assembly, e.g. "fastcc" or
// "cc 11". Aliases print as their canonical convention.
func (cc CallingConvention) IRKeyword() string {
	canon := cc.Canonical()
	if kw, ok := irKeywords[canon]; ok {
		return kw
	}
	return "cc " + strconv.FormatUint(uint64(canon.Code()), 10)
}

// ParseIRKeyword inverts IRKeyword. Both named keywords and the numeric
// "cc N" form are accepted.
func ParseIRKeyword(s string) (CallingConvention, error) {
	s = strings.TrimSpace(s)
	if cc, ok := irKeywordIndex[s]; ok {
		return cc, nil
	}
	if rest, ok := strings.CutPrefix(s, "cc "); ok {
		return ParseCode(strings.TrimSpace(rest))
	}
	return 0, &Error{Kind: UnknownConvention, Name: s}
}
