package maths

import (
	"errors"
)

// NewLU 创建稠密矩阵LU分解器（输入矩阵维度n）
func NewLU[T Number](n int) (LU[T], error) {
	if n < 1 {
		return nil, errors.New("lu dimension must be positive")
	}
	return &luDense[T]{
		baseLU: baseLU[T]{
			n:        n,
			L:        NewDenseMatrix[T](n, n),
			U:        NewDenseMatrix[T](n, n),
			Y:        NewDenseVector[T](n),
			P:        make([]int, n),
			pinverse: make([]int, n),
		},
	}, nil
}

// NewLUSparse 创建稀疏矩阵LU分解器（输入矩阵维度n）
func NewLUSparse[T Number](n int) (LU[T], error) {
	if n < 1 {
		return nil, errors.New("lu sparse dimension must be positive")
	}
	return &luSparse[T]{
		baseLU: baseLU[T]{
			n:        n,
			L:        NewSparseMatrix[T](n, n),
			U:        NewSparseMatrix[T](n, n),
			Y:        NewDenseVector[T](n), // 中间向量用稠密更高效（访问速度优先）
			P:        make([]int, n),
			pinverse: make([]int, n),
		},
	}, nil
}

// baseLU 公共LU分解结构体（存储共用字段）
// 实现PA = LU分解，其中：
//
//	P - 置换矩阵（用向量表示）
//	L - 单位下三角矩阵（对角线为1）
//	U - 上三角矩阵
type baseLU[T Number] struct {
	n        int       // 矩阵维度（方阵n×n）
	L        Matrix[T] // 下三角矩阵L（L[i][i]=1，严格下三角存储消元因子）
	U        Matrix[T] // 上三角矩阵U（存储消元后上三角元素）
	Y        Vector[T] // 中间变量：存储前向替换结果Ly=Pb
	P        []int     // 置换向量：P[i] = 分解后第i行对应的原始矩阵行索引
	pinverse []int     // 逆置换向量：pinverse[i] = 原始第i行对应的分解后行索引
}

// Dim 获取矩阵维度
func (lu *baseLU[T]) Dim() int {
	return lu.n
}

// init 初始化置换向量和L矩阵的对角线
func (lu *baseLU[T]) init(matrix Matrix[T]) {
	lu.L.Zero()
	lu.U.Zero()
	matrix.Copy(lu.U) // 将A拷贝到U，后续在U上进行原位消元
	var one T = 1
	for i := 0; i < lu.n; i++ {
		lu.P[i] = i        // 初始置换：分解后行i对应原始行i
		lu.pinverse[i] = i // 初始逆置换：原始行i对应分解后行i
		lu.L.Set(i, i, one)
	}
}

// updatePermutation 更新置换向量（交换并同步更新逆置换）
func (lu *baseLU[T]) updatePermutation(k, maxRow int) {
	lu.P[k], lu.P[maxRow] = lu.P[maxRow], lu.P[k]
	lu.pinverse[lu.P[k]] = k
	lu.pinverse[lu.P[maxRow]] = maxRow
}

// luDense 稠密矩阵LU分解实现（A=PLU，带部分主元）
type luDense[T Number] struct {
	baseLU[T]
}

// Decompose 执行稠密矩阵LU分解（核心逻辑：高斯消元+部分主元）
func (lu *luDense[T]) Decompose(matrix Matrix[T]) error {
	if !matrix.IsSquare() {
		return errors.New("lu dense decompose: input must be square matrix")
	}
	if matrix.Rows() != lu.n {
		return errors.New("lu dense decompose: matrix dimension mismatch")
	}

	lu.init(matrix)

	var zero T
	for k := 0; k < lu.n; k++ {
		maxRow := k
		maxAbsVal := abs(lu.U.Get(k, k))
		for i := k + 1; i < lu.n; i++ {
			if v := abs(lu.U.Get(i, k)); v > maxAbsVal {
				maxAbsVal = v
				maxRow = i
			}
		}

		if maxAbsVal < 1e-16 {
			return errors.New("lu dense decompose: matrix is singular or nearly singular")
		}

		if maxRow != k {
			lu.U.SwapRows(k, maxRow)
			for j := 0; j < k; j++ {
				val1 := lu.L.Get(k, j)
				val2 := lu.L.Get(maxRow, j)
				lu.L.Set(k, j, val2)
				lu.L.Set(maxRow, j, val1)
			}
			lu.updatePermutation(k, maxRow)
		}

		pivotVal := lu.U.Get(k, k)
		for i := k + 1; i < lu.n; i++ {
			factor := lu.U.Get(i, k) / pivotVal
			lu.L.Set(i, k, factor)
			lu.U.Set(i, k, zero)

			for j := k + 1; j < lu.n; j++ {
				newVal := lu.U.Get(i, j) - factor*lu.U.Get(k, j)
				lu.U.Set(i, j, newVal)
			}
		}
	}
	return nil
}

// SolveReuse 利用分解结果求解Ax=b（重用预分配向量，无内存额外分配）
func (lu *luDense[T]) SolveReuse(b, x Vector[T]) error {
	if b.Length() != lu.n || x.Length() != lu.n {
		return errors.New("lu dense solve: vector dimension mismatch")
	}

	lu.Y.Zero()
	for i := 0; i < lu.n; i++ {
		sum := b.Get(lu.P[i])
		for j := 0; j < i; j++ {
			sum -= lu.L.Get(i, j) * lu.Y.Get(j)
		}
		lu.Y.Set(i, sum)
	}

	x.Zero()
	for i := lu.n - 1; i >= 0; i-- {
		sum := lu.Y.Get(i)
		for j := i + 1; j < lu.n; j++ {
			sum -= lu.U.Get(i, j) * x.Get(j)
		}
		diagVal := lu.U.Get(i, i)
		if abs(diagVal) < 1e-16 {
			return errors.New("lu dense solve: division by zero (U diagonal is zero)")
		}
		x.Set(i, sum/diagVal)
	}

	return nil
}

// luSparse 稀疏矩阵LU分解实现（A=PLU，带部分主元+稀疏优化）
type luSparse[T Number] struct {
	baseLU[T]
}

// Decompose 执行稀疏矩阵LU分解（核心：保留非零元素，减少计算/内存开销）
func (lu *luSparse[T]) Decompose(matrix Matrix[T]) error {
	if !matrix.IsSquare() {
		return errors.New("lu sparse decompose: input must be square matrix")
	}
	if matrix.Rows() != lu.n {
		return errors.New("lu sparse decompose: matrix dimension mismatch")
	}

	lu.init(matrix)

	var zero T
	for k := 0; k < lu.n; k++ {
		maxRow := k
		maxAbsVal := abs(lu.U.Get(k, k))
		for i := k + 1; i < lu.n; i++ {
			if v := abs(lu.U.Get(i, k)); v > maxAbsVal {
				maxAbsVal = v
				maxRow = i
			}
		}

		if maxAbsVal < 1e-16 {
			return errors.New("lu sparse decompose: matrix is singular or nearly singular")
		}

		if maxRow != k {
			lu.U.SwapRows(k, maxRow)
			// 只交换L中已计算的消元因子（j<k的列），对角线上的1保持原位
			for j := 0; j < k; j++ {
				val1 := lu.L.Get(k, j)
				val2 := lu.L.Get(maxRow, j)
				lu.L.Set(k, j, val2)
				lu.L.Set(maxRow, j, val1)
			}
			lu.updatePermutation(k, maxRow)
		}

		pivotVal := lu.U.Get(k, k)
		pivotCols, pivotVals := lu.U.GetRow(k)

		for i := k + 1; i < lu.n; i++ {
			valIK := lu.U.Get(i, k)
			if abs(valIK) < 1e-16 {
				continue
			}

			factor := valIK / pivotVal
			lu.L.Set(i, k, factor)
			lu.U.Set(i, k, zero)

			for idx, j := range pivotCols {
				if j <= k {
					continue
				}
				updatedVal := lu.U.Get(i, j) - factor*pivotVals.Get(idx)
				if abs(updatedVal) < 1e-16 {
					lu.U.Set(i, j, zero)
				} else {
					lu.U.Set(i, j, updatedVal)
				}
			}
		}
	}
	return nil
}

// SolveReuse 稀疏矩阵LU分解结果求解Ax=b（复用向量，稀疏优化）
func (lu *luSparse[T]) SolveReuse(b, x Vector[T]) error {
	if b.Length() != lu.n || x.Length() != lu.n {
		return errors.New("lu sparse solve: vector dimension mismatch")
	}

	lu.Y.Zero()
	for i := 0; i < lu.n; i++ {
		sum := b.Get(lu.P[i])
		cols, vals := lu.L.GetRow(i)
		for idx, j := range cols {
			if j < i {
				sum -= vals.Get(idx) * lu.Y.Get(j)
			}
		}
		lu.Y.Set(i, sum)
	}

	x.Zero()
	for i := lu.n - 1; i >= 0; i-- {
		sum := lu.Y.Get(i)
		diag := lu.U.Get(i, i)

		if abs(diag) < 1e-16 {
			return errors.New("lu sparse solve: division by zero (U diagonal is zero)")
		}

		cols, vals := lu.U.GetRow(i)
		for idx, j := range cols {
			if j > i {
				sum -= vals.Get(idx) * x.Get(j)
			}
		}
		x.Set(i, sum/diag)
	}
	return nil
}
