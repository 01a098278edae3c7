package apocalypse

import (
	"ZombieApocalypse/internal/grid"
	"ZombieApocalypse/modules/kit/errx"
)

// Code 表示模拟内核的错误码。
//
// 约定：
// - 内核只返回“是什么错”（code）和上下文（data）
// - 是否终止模拟由驱动层决定
type Code = errx.Code

const (
	CodeInvalidSize    Code = "SIM_INVALID_SIZE"
	CodeFieldMismatch  Code = "SIM_FIELD_MISMATCH"
	CodeUnknownSpecies Code = "SIM_UNKNOWN_SPECIES"
	// CodeOutOfBounds 复用 grid 的越界错误码。
	CodeOutOfBounds Code = grid.CodeOutOfBounds
)

type Error = errx.Error

var (
	ErrInvalidSize    = errx.NewBiz(CodeInvalidSize, "网格尺寸必须为正数")
	ErrFieldMismatch  = errx.NewBiz(CodeFieldMismatch, "距离场尺寸与网格不一致")
	ErrUnknownSpecies = errx.NewBiz(CodeUnknownSpecies, "未知物种")
	ErrOutOfBounds    = grid.ErrOutOfBounds
)
