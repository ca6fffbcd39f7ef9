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

// mnemonics for every opcode. instructions with an immediate operand have the
// operand appended by the disassembler.
var mnemonics = [256]string{
	"NOP", "LXI B,", "STAX B", "INX B", "INR B", "DCR B", "MVI B,", "RLC", // 00
	"DB 0x08", "DAD B", "LDAX B", "DCX B", "INR C", "DCR C", "MVI C,", "RRC", // 08
	"DB 0x10", "LXI D,", "STAX D", "INX D", "INR D", "DCR D", "MVI D,", "RAL", // 10
	"DB 0x18", "DAD D", "LDAX D", "DCX D", "INR E", "DCR E", "MVI E,", "RAR", // 18
	"DB 0x20", "LXI H,", "SHLD", "INX H", "INR H", "DCR H", "MVI H,", "DAA", // 20
	"DB 0x28", "DAD H", "LHLD", "DCX H", "INR L", "DCR L", "MVI L,", "CMA", // 28
	"DB 0x30", "LXI SP,", "STA", "INX SP", "INR M", "DCR M", "MVI M,", "STC", // 30
	"DB 0x38", "DAD SP", "LDA", "DCX SP", "INR A", "DCR A", "MVI A,", "CMC", // 38
	"MOV B, B", "MOV B, C", "MOV B, D", "MOV B, E", "MOV B, H", "MOV B, L", "MOV B, M", "MOV B, A", // 40
	"MOV C, B", "MOV C, C", "MOV C, D", "MOV C, E", "MOV C, H", "MOV C, L", "MOV C, M", "MOV C, A", // 48
	"MOV D, B", "MOV D, C", "MOV D, D", "MOV D, E", "MOV D, H", "MOV D, L", "MOV D, M", "MOV D, A", // 50
	"MOV E, B", "MOV E, C", "MOV E, D", "MOV E, E", "MOV E, H", "MOV E, L", "MOV E, M", "MOV E, A", // 58
	"MOV H, B", "MOV H, C", "MOV H, D", "MOV H, E", "MOV H, H", "MOV H, L", "MOV H, M", "MOV H, A", // 60
	"MOV L, B", "MOV L, C", "MOV L, D", "MOV L, E", "MOV L, H", "MOV L, L", "MOV L, M", "MOV L, A", // 68
	"MOV M, B", "MOV M, C", "MOV M, D", "MOV M, E", "MOV M, H", "MOV M, L", "HLT", "MOV M, A", // 70
	"MOV A, B", "MOV A, C", "MOV A, D", "MOV A, E", "MOV A, H", "MOV A, L", "MOV A, M", "MOV A, A", // 78
	"ADD B", "ADD C", "ADD D", "ADD E", "ADD H", "ADD L", "ADD M", "ADD A", // 80
	"ADC B", "ADC C", "ADC D", "ADC E", "ADC H", "ADC L", "ADC M", "ADC A", // 88
	"SUB B", "SUB C", "SUB D", "SUB E", "SUB H", "SUB L", "SUB M", "SUB A", // 90
	"SBB B", "SBB C", "SBB D", "SBB E", "SBB H", "SBB L", "SBB M", "SBB A", // 98
	"ANA B", "ANA C", "ANA D", "ANA E", "ANA H", "ANA L", "ANA M", "ANA A", // a0
	"XRA B", "XRA C", "XRA D", "XRA E", "XRA H", "XRA L", "XRA M", "XRA A", // a8
	"ORA B", "ORA C", "ORA D", "ORA E", "ORA H", "ORA L", "ORA M", "ORA A", // b0
	"CMP B", "CMP C", "CMP D", "CMP E", "CMP H", "CMP L", "CMP M", "CMP A", // b8
	"RNZ", "POP B", "JNZ", "JMP", "CNZ", "PUSH B", "ADI", "RST 0", // c0
	"RZ", "RET", "JZ", "JMP", "CZ", "CALL", "ACI", "RST 1", // c8
	"RNC", "POP D", "JNC", "OUT", "CNC", "PUSH D", "SUI", "RST 2", // d0
	"RC", "RET", "JC", "IN", "CC", "CALL", "SBI", "RST 3", // d8
	"RPO", "POP H", "JPO", "XTHL", "CPO", "PUSH H", "ANI", "RST 4", // e0
	"RPE", "PCHL", "JPE", "XCHG", "CPE", "CALL", "XRI", "RST 5", // e8
	"RP", "POP PSW", "JP", "DI", "CP", "PUSH PSW", "ORI", "RST 6", // f0
	"RM", "SPHL", "JM", "EI", "CM", "CALL", "CPI", "RST 7", // f8
}

// number of machine cycles for every opcode.
var cycles = [256]int{
	// 0  1  2  3  4  5  6  7  8  9  a  b  c  d  e  f
	1, 3, 2, 2, 2, 2, 2, 1, 1, 3, 2, 2, 2, 2, 2, 1, // 0
	1, 3, 2, 2, 2, 2, 2, 1, 1, 3, 2, 2, 2, 2, 2, 1, // 1
	1, 3, 5, 2, 2, 2, 2, 1, 1, 3, 5, 2, 2, 2, 2, 1, // 2
	1, 3, 4, 2, 3, 3, 3, 1, 1, 3, 4, 2, 2, 2, 2, 1, // 3
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 4
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 5
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 6
	2, 2, 2, 2, 2, 2, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 7
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 8
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // 9
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // a
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, // b
	4, 3, 3, 3, 6, 4, 2, 4, 4, 3, 3, 3, 6, 6, 2, 4, // c
	4, 3, 3, 3, 6, 4, 2, 4, 4, 3, 3, 3, 6, 6, 2, 4, // d
	4, 3, 3, 6, 6, 4, 2, 4, 4, 2, 3, 1, 6, 6, 2, 4, // e
	4, 3, 3, 1, 6, 4, 2, 4, 4, 2, 3, 1, 6, 6, 2, 4, // f
}

// definitions is the table to which GetDefinitions() returns a reference.
var definitions [256]Definition

func init() {
	for i := range definitions {
		op := uint8(i)
		operation, flow := decode(op)
		definitions[i] = Definition{
			OpCode:       op,
			Mnemonic:     mnemonics[i],
			Bytes:        length(operation),
			Cycles:       cycles[i],
			Operation:    operation,
			Flow:         flow,
			Undocumented: undocumented(op),
		}
	}
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. The table must not be altered.
func GetDefinitions() *[256]Definition {
	return &definitions
}

// Lookup returns the definition for a single opcode.
func Lookup(opcode uint8) Definition {
	return definitions[opcode]
}

func undocumented(opcode uint8) bool {
	switch opcode {
	case 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38:
		return true
	case 0xcb, 0xd9, 0xdd, 0xed, 0xfd:
		return true
	}
	return false
}

func length(operation Operation) int {
	switch operation {
	case MoveImmediate, MoveImmediateMemory, ALUImmediate, Input, Output:
		return 2
	case LoadPairImmediate, LoadDirect, StoreDirect, LoadHL, StoreHL:
		return 3
	case Jump, JumpConditional, Call, CallConditional:
		return 3
	}
	return 1
}

// decode the Operation and Flow for an opcode from the bit pattern of the
// opcode.
func decode(opcode uint8) (Operation, Flow) {
	switch opcode >> 6 {
	case 0x00:
		return decodeLow(opcode), FlowNone

	case 0x01:
		if opcode == 0x76 {
			return Halt, FlowNone
		}
		if DDD(opcode) == RegM {
			return MoveToMemory, FlowNone
		}
		if SSS(opcode) == RegM {
			return MoveFromMemory, FlowNone
		}
		return Move, FlowNone

	case 0x02:
		if SSS(opcode) == RegM {
			return ALUMemory, FlowNone
		}
		return ALU, FlowNone
	}

	return decodeHigh(opcode)
}

// opcodes 0x00 to 0x3f.
func decodeLow(opcode uint8) Operation {
	switch opcode & 0x07 {
	case 0x00:
		return Nop

	case 0x01:
		if opcode&0x08 == 0x08 {
			return AddPair
		}
		return LoadPairImmediate

	case 0x02:
		switch opcode {
		case 0x02, 0x12:
			return StoreIndirect
		case 0x0a, 0x1a:
			return LoadIndirect
		case 0x22:
			return StoreHL
		case 0x2a:
			return LoadHL
		case 0x32:
			return StoreDirect
		}
		return LoadDirect

	case 0x03:
		if opcode&0x08 == 0x08 {
			return DecrementPair
		}
		return IncrementPair

	case 0x04:
		if DDD(opcode) == RegM {
			return IncrementMemory
		}
		return Increment

	case 0x05:
		if DDD(opcode) == RegM {
			return DecrementMemory
		}
		return Decrement

	case 0x06:
		if DDD(opcode) == RegM {
			return MoveImmediateMemory
		}
		return MoveImmediate
	}

	switch opcode {
	case 0x07:
		return RotateLeft
	case 0x0f:
		return RotateRight
	case 0x17:
		return RotateLeftThroughCarry
	case 0x1f:
		return RotateRightThroughCarry
	case 0x27:
		return DecimalAdjust
	case 0x2f:
		return Complement
	case 0x37:
		return SetCarry
	}
	return ComplementCarry
}

// opcodes 0xc0 to 0xff.
func decodeHigh(opcode uint8) (Operation, Flow) {
	switch opcode & 0x07 {
	case 0x00:
		return ReturnConditional, FlowReturn

	case 0x01:
		switch opcode {
		case 0xc9, 0xd9:
			return Return, FlowReturn
		case 0xe9:
			return JumpIndirect, FlowJumpIndirect
		case 0xf9:
			return LoadSP, FlowNone
		}
		return Pop, FlowNone

	case 0x02:
		return JumpConditional, FlowJumpConditional

	case 0x03:
		switch opcode {
		case 0xc3, 0xcb:
			return Jump, FlowJump
		case 0xd3:
			return Output, FlowNone
		case 0xdb:
			return Input, FlowNone
		case 0xe3:
			return ExchangeStack, FlowNone
		case 0xeb:
			return ExchangeDE, FlowNone
		case 0xf3:
			return DisableInterrupts, FlowNone
		}
		return EnableInterrupts, FlowNone

	case 0x04:
		return CallConditional, FlowCallConditional

	case 0x05:
		if opcode&0x08 == 0x08 {
			return Call, FlowCall
		}
		return Push, FlowNone

	case 0x06:
		return ALUImmediate, FlowNone
	}

	return Restart, FlowRestart
}
