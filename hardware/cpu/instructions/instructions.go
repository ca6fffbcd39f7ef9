// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package instructions

import "fmt"

// Operation identifies the micro-operation sequence of an instruction. Many
// opcodes share the same Operation, differing only in the operands encoded in
// the opcode.
type Operation int

// List of valid Operations.
const (
	Nop Operation = iota
	Halt

	Move                // MOV r,r
	MoveFromMemory      // MOV r,M
	MoveToMemory        // MOV M,r
	MoveImmediate       // MVI r
	MoveImmediateMemory // MVI M
	LoadIndirect        // LDAX
	StoreIndirect       // STAX
	LoadDirect          // LDA
	StoreDirect         // STA
	LoadPairImmediate   // LXI
	LoadHL              // LHLD
	StoreHL             // SHLD
	LoadSP              // SPHL
	ExchangeDE          // XCHG
	ExchangeStack       // XTHL
	Push
	Pop

	ALU          // ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP r
	ALUMemory    // ... M
	ALUImmediate // ADI/ACI/SUI/SBI/ANI/XRI/ORI/CPI
	AddPair      // DAD

	Increment       // INR r
	Decrement       // DCR r
	IncrementMemory // INR M
	DecrementMemory // DCR M
	IncrementPair   // INX
	DecrementPair   // DCX

	DecimalAdjust
	Complement
	SetCarry
	ComplementCarry
	RotateLeft
	RotateRight
	RotateLeftThroughCarry
	RotateRightThroughCarry

	Jump
	JumpConditional
	JumpIndirect // PCHL
	Call
	CallConditional
	Return
	ReturnConditional
	Restart

	Input
	Output
	DisableInterrupts
	EnableInterrupts
)

// Flow categorises an instruction by the effect it has on the flow of the
// program.
type Flow int

// List of valid Flow values. The order is significant and should not be
// changed.
const (
	FlowCall Flow = iota
	FlowCallConditional
	FlowRestart
	FlowJumpIndirect
	FlowJump
	FlowJumpConditional
	FlowReturn
	FlowNone
)

func (f Flow) String() string {
	switch f {
	case FlowCall:
		return "call"
	case FlowCallConditional:
		return "conditional call"
	case FlowRestart:
		return "restart"
	case FlowJumpIndirect:
		return "indirect jump"
	case FlowJump:
		return "jump"
	case FlowJumpConditional:
		return "conditional jump"
	case FlowReturn:
		return "return"
	}
	return "none"
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode   uint8
	Mnemonic string

	// number of bytes in the instruction, including the opcode
	Bytes int

	// number of machine cycles. conditional calls and returns can complete
	// in fewer cycles than this if the condition is not met
	Cycles int

	Operation Operation
	Flow      Flow

	// the opcode is not part of the documented instruction set
	Undocumented bool
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.Flow)
}

// IsSubroutine returns true if the opcode pushes a return address onto the
// stack.
func (defn Definition) IsSubroutine() bool {
	return defn.Flow == FlowCall || defn.Flow == FlowCallConditional || defn.Flow == FlowRestart
}

// DDD returns the destination register encoded in the opcode.
func DDD(opcode uint8) int {
	return int(opcode>>3) & 0x07
}

// SSS returns the source register encoded in the opcode.
func SSS(opcode uint8) int {
	return int(opcode) & 0x07
}

// RP returns the register pair encoded in the opcode.
func RP(opcode uint8) int {
	return int(opcode>>4) & 0x03
}

// CCC returns the condition encoded in the opcode.
func CCC(opcode uint8) int {
	return int(opcode>>3) & 0x07
}

// ALUFunction returns the ALU function encoded in the opcode.
func ALUFunction(opcode uint8) int {
	return int(opcode>>3) & 0x07
}

// Register indexes as encoded in DDD and SSS. RegM is not a register but
// the memory location pointed to by HL.
const (
	RegB = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegM
	RegA
)

// Register pair indexes as encoded in RP. PairSP is PSW for the PUSH and POP
// instructions.
const (
	PairBC = iota
	PairDE
	PairHL
	PairSP
)

// ALU functions as encoded by ALUFunction().
const (
	ADD = iota
	ADC
	SUB
	SBB
	ANA
	XRA
	ORA
	CMP
)
