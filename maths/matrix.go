package maths

import (
	"fmt"
	"sort"
)

// denseMatrix 稠密矩阵实现（行优先存储全量元素）
type denseMatrix[T Number] struct {
	rows, cols int
	data       []T
}

// NewDenseMatrix 创建指定维度的空稠密矩阵
func NewDenseMatrix[T Number](rows, cols int) Matrix[T] {
	if rows < 0 || cols < 0 {
		panic("invalid matrix dimensions: cannot be negative")
	}
	return &denseMatrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// Base 获取底层
func (m *denseMatrix[T]) Base() Matrix[T] {
	return m
}

func (m *denseMatrix[T]) index(row, col int) int {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix index out of range: row=%d, col=%d (rows=%d, cols=%d)", row, col, m.rows, m.cols))
	}
	return row*m.cols + col
}

// Rows 返回矩阵行数
func (m *denseMatrix[T]) Rows() int { return m.rows }

// Cols 返回矩阵列数
func (m *denseMatrix[T]) Cols() int { return m.cols }

// IsSquare 判断是否为方阵
func (m *denseMatrix[T]) IsSquare() bool { return m.rows == m.cols }

// Get 获取指定行列元素值（越界panic）
func (m *denseMatrix[T]) Get(row, col int) T { return m.data[m.index(row, col)] }

// Set 设置指定行列元素值（越界panic）
func (m *denseMatrix[T]) Set(row, col int, value T) { m.data[m.index(row, col)] = value }

// Increment 增量更新矩阵元素（越界panic）
func (m *denseMatrix[T]) Increment(row, col int, value T) { m.data[m.index(row, col)] += value }

// GetRow 获取指定行的非零元素（返回：列索引切片+值向量）
func (m *denseMatrix[T]) GetRow(row int) ([]int, Vector[T]) {
	if row < 0 || row >= m.rows {
		panic(fmt.Sprintf("row index out of range: %d (rows: %d)", row, m.rows))
	}
	start := row * m.cols
	var zero T
	var cols []int
	var vals []T
	for c := 0; c < m.cols; c++ {
		v := m.data[start+c]
		if v != zero {
			cols = append(cols, c)
			vals = append(vals, v)
		}
	}
	return cols, NewDenseVectorWithData(vals)
}

// ToDense 转换为稠密向量（行优先展开）
func (m *denseMatrix[T]) ToDense() Vector[T] {
	out := make([]T, len(m.data))
	copy(out, m.data)
	return NewDenseVectorWithData(out)
}

// BuildFromDense 从稠密矩阵构建（覆盖原有数据）
func (m *denseMatrix[T]) BuildFromDense(dense [][]T) {
	if len(dense) != m.rows || (len(dense) > 0 && len(dense[0]) != m.cols) {
		panic(fmt.Sprintf("dense matrix dimension mismatch: expected %dx%d rows", m.rows, m.cols))
	}
	for i := range dense {
		copy(m.data[i*m.cols:(i+1)*m.cols], dense[i])
	}
}

// Zero 清空矩阵为零矩阵
func (m *denseMatrix[T]) Zero() {
	var zero T
	for i := range m.data {
		m.data[i] = zero
	}
}

// Copy 复制自身数据到目标矩阵（支持稠密/稀疏等类型）
func (m *denseMatrix[T]) Copy(a Matrix[T]) {
	switch target := a.(type) {
	case *denseMatrix[T]:
		if target.rows != m.rows || target.cols != m.cols {
			panic(fmt.Sprintf("dimension mismatch: source %dx%d, target %dx%d", m.rows, m.cols, target.rows, target.cols))
		}
		copy(target.data, m.data)
	default:
		var zero T
		for i := 0; i < m.rows; i++ {
			for j := 0; j < m.cols; j++ {
				val := m.Get(i, j)
				if val != zero {
					target.Set(i, j, val)
				}
			}
		}
	}
}

// Resize 重置矩阵大小和数据（清空所有元素）
func (m *denseMatrix[T]) Resize(rows, cols int) {
	if rows < 0 || cols < 0 {
		panic("invalid matrix dimensions: cannot be negative")
	}
	m.rows, m.cols = rows, cols
	m.data = make([]T, rows*cols)
}

// SwapRows 交换两行
func (m *denseMatrix[T]) SwapRows(row1, row2 int) {
	if row1 == row2 {
		return
	}
	r1 := m.data[row1*m.cols : row1*m.cols+m.cols]
	r2 := m.data[row2*m.cols : row2*m.cols+m.cols]
	for i := range r1 {
		r1[i], r2[i] = r2[i], r1[i]
	}
}

// MatrixVectorMultiply 矩阵向量乘法（A*x，返回新向量）
func (m *denseMatrix[T]) MatrixVectorMultiply(x Vector[T]) Vector[T] {
	if x.Length() != m.cols {
		panic(fmt.Sprintf("vector dimension mismatch: x length=%d, matrix cols=%d", x.Length(), m.cols))
	}
	result := NewDenseVector[T](m.rows)
	for i := 0; i < m.rows; i++ {
		var sum T
		for j := 0; j < m.cols; j++ {
			sum += m.Get(i, j) * x.Get(j)
		}
		result.Set(i, sum)
	}
	return result
}

// NonZeroCount 统计非零元素数量
func (m *denseMatrix[T]) NonZeroCount() int {
	var zero T
	count := 0
	for _, v := range m.data {
		if v != zero {
			count++
		}
	}
	return count
}

// String 格式化输出矩阵
func (m *denseMatrix[T]) String() string {
	result := ""
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			result += fmt.Sprintf("%8v ", m.Get(i, j))
		}
		result += "\n"
	}
	return result
}

// sparseMatrix 稀疏矩阵实现（CSR格式：Compressed Sparse Row）
// 核心优化：仅存储非零元素，大幅节省内存（适合非零元素占比<10%的矩阵）
type sparseMatrix[T Number] struct {
	DataManager[T]      // 非零元素值：与colInd一一对应
	rows, cols     int  // 矩阵维度
	rowPtr         []int // 行指针：rowPtr[i] = 第i行非零元素在colInd/values中的起始索引
	colInd         []int // 列索引：存储非零元素的列号
}

// Base 获取底层
func (m *sparseMatrix[T]) Base() Matrix[T] {
	return m
}

// NewSparseMatrix 创建指定维度的空稀疏矩阵
func NewSparseMatrix[T Number](rows, cols int) Matrix[T] {
	if rows < 0 || cols < 0 {
		panic("invalid matrix dimensions: cannot be negative")
	}
	return &sparseMatrix[T]{
		rows:        rows,
		cols:        cols,
		rowPtr:      make([]int, rows+1),
		colInd:      make([]int, 0),
		DataManager: NewDataManager[T](0),
	}
}

func (m *sparseMatrix[T]) checkBounds(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix index out of range: row=%d, col=%d (rows=%d, cols=%d)", row, col, m.rows, m.cols))
	}
}

func (m *sparseMatrix[T]) find(row, col int) (int, bool) {
	start, end := m.rowPtr[row], m.rowPtr[row+1]
	pos := sort.Search(end-start, func(i int) bool {
		return m.colInd[start+i] >= col
	}) + start
	return pos, pos < end && m.colInd[pos] == col
}

// Set 设置矩阵元素值（非零则插入/更新，零则删除）
func (m *sparseMatrix[T]) Set(row, col int, value T) {
	m.checkBounds(row, col)
	var zero T
	pos, found := m.find(row, col)
	if found {
		if value != zero {
			m.DataManager.Set(pos, value)
		} else {
			m.deleteElement(row, pos)
		}
	} else if value != zero {
		m.insertElement(row, col, value, pos)
	}
}

// Increment 增量更新矩阵元素（非零则累加，零则插入）
func (m *sparseMatrix[T]) Increment(row, col int, value T) {
	m.checkBounds(row, col)
	var zero T
	pos, found := m.find(row, col)
	if found {
		newVal := m.DataManager.Get(pos) + value
		if newVal != zero {
			m.DataManager.Set(pos, newVal)
		} else {
			m.deleteElement(row, pos)
		}
	} else if value != zero {
		m.insertElement(row, col, value, pos)
	}
}

// Get 获取矩阵元素值（非零返回值，零返回0）
func (m *sparseMatrix[T]) Get(row, col int) T {
	m.checkBounds(row, col)
	pos, found := m.find(row, col)
	if found {
		return m.DataManager.Get(pos)
	}
	var zero T
	return zero
}

// deleteElement 删除指定位置的非零元素（内部方法）
func (m *sparseMatrix[T]) deleteElement(row, pos int) {
	m.colInd = append(m.colInd[:pos], m.colInd[pos+1:]...)
	m.DataManager.RemoveInPlace(pos, 1)
	for i := row + 1; i <= m.rows; i++ {
		m.rowPtr[i]--
	}
}

// insertElement 在指定位置插入非零元素（内部方法）
func (m *sparseMatrix[T]) insertElement(row, col int, value T, pos int) {
	m.colInd = append(m.colInd, 0)
	copy(m.colInd[pos+1:], m.colInd[pos:])
	m.colInd[pos] = col
	m.DataManager.InsertInPlace(pos, value)
	for i := row + 1; i <= m.rows; i++ {
		m.rowPtr[i]++
	}
}

// Rows 返回矩阵行数
func (m *sparseMatrix[T]) Rows() int { return m.rows }

// Cols 返回矩阵列数
func (m *sparseMatrix[T]) Cols() int { return m.cols }

// String 格式化输出矩阵（显示所有元素，零元素也显示）
func (m *sparseMatrix[T]) String() string {
	result := ""
	var zero T
	for i := 0; i < m.rows; i++ {
		colPtr := m.rowPtr[i]
		for j := 0; j < m.cols; j++ {
			if colPtr < m.rowPtr[i+1] && m.colInd[colPtr] == j {
				result += fmt.Sprintf("%8v ", m.DataManager.Get(colPtr))
				colPtr++
			} else {
				result += fmt.Sprintf("%8v ", zero)
			}
		}
		result += "\n"
	}
	return result
}

// NonZeroCount 统计非零元素数量
func (m *sparseMatrix[T]) NonZeroCount() int { return m.DataManager.Length() }

// Copy 复制自身数据到目标矩阵（支持稀疏/稠密等类型）
func (m *sparseMatrix[T]) Copy(a Matrix[T]) {
	switch target := a.(type) {
	case *sparseMatrix[T]:
		if target.rows != m.rows || target.cols != m.cols {
			panic(fmt.Sprintf("dimension mismatch: source %dx%d, target %dx%d", m.rows, m.cols, target.rows, target.cols))
		}
		copy(target.rowPtr, m.rowPtr)
		target.colInd = append(target.colInd[:0], m.colInd...)
		target.DataManager = NewDataManager[T](m.DataManager.Length())
		m.DataManager.Copy(target.DataManager)
	default:
		var zero T
		for i := 0; i < m.rows; i++ {
			start, end := m.rowPtr[i], m.rowPtr[i+1]
			for j := start; j < end; j++ {
				val := m.DataManager.Get(j)
				if val != zero {
					target.Set(i, m.colInd[j], val)
				}
			}
		}
	}
}

// IsSquare 判断是否为方阵
func (m *sparseMatrix[T]) IsSquare() bool { return m.rows == m.cols }

// BuildFromDense 从稠密矩阵构建稀疏矩阵（仅保留非零元素）
func (m *sparseMatrix[T]) BuildFromDense(dense [][]T) {
	if len(dense) != m.rows || (len(dense) > 0 && len(dense[0]) != m.cols) {
		panic(fmt.Sprintf("dense matrix dimension mismatch: expected %dx%d rows", m.rows, m.cols))
	}
	m.colInd = m.colInd[:0]
	m.DataManager.ResizeInPlace(0)
	clear(m.rowPtr)

	var zero T
	count := 0
	for i := 0; i < m.rows; i++ {
		m.rowPtr[i] = count
		for j := 0; j < m.cols; j++ {
			val := dense[i][j]
			if val != zero {
				m.colInd = append(m.colInd, j)
				m.DataManager.AppendInPlace(val)
				count++
			}
		}
	}
	m.rowPtr[m.rows] = count
}

// GetRow 获取指定行的非零元素（返回：列索引切片+值向量）
func (m *sparseMatrix[T]) GetRow(row int) ([]int, Vector[T]) {
	if row < 0 || row >= m.rows {
		panic(fmt.Sprintf("row index out of range: %d (rows: %d)", row, m.rows))
	}
	start, end := m.rowPtr[row], m.rowPtr[row+1]
	cols := m.colInd[start:end]
	values := make([]T, len(cols))
	for i := range cols {
		values[i] = m.DataManager.Get(start + i)
	}
	return cols, NewDenseVectorWithData(values)
}

// MatrixVectorMultiply 矩阵向量乘法（A*x，稀疏优化：仅遍历非零元素）
func (m *sparseMatrix[T]) MatrixVectorMultiply(x Vector[T]) Vector[T] {
	if x.Length() != m.cols {
		panic(fmt.Sprintf("vector dimension mismatch: x length=%d, matrix cols=%d", x.Length(), m.cols))
	}
	result := NewDenseVector[T](m.rows)
	for i := 0; i < m.rows; i++ {
		start, end := m.rowPtr[i], m.rowPtr[i+1]
		for j := start; j < end; j++ {
			result.Increment(i, m.DataManager.Get(j)*x.Get(m.colInd[j]))
		}
	}
	return result
}

// Zero 清空矩阵为零矩阵（释放非零元素内存）
func (m *sparseMatrix[T]) Zero() {
	m.colInd = m.colInd[:0]
	m.DataManager.ResizeInPlace(0)
	clear(m.rowPtr)
}

// ToDense 转换为稠密向量（行优先展开）
func (m *sparseMatrix[T]) ToDense() Vector[T] {
	dense := make([]T, m.rows*m.cols)
	for i := 0; i < m.rows; i++ {
		start, end := m.rowPtr[i], m.rowPtr[i+1]
		for j := start; j < end; j++ {
			dense[i*m.cols+m.colInd[j]] = m.DataManager.Get(j)
		}
	}
	return NewDenseVectorWithData(dense)
}

// Resize 重置矩阵大小和数据（清空所有元素）
func (m *sparseMatrix[T]) Resize(rows, cols int) {
	if rows < 0 || cols < 0 {
		panic("invalid matrix dimensions: cannot be negative")
	}
	m.rows, m.cols = rows, cols
	m.rowPtr = make([]int, rows+1)
	m.colInd = m.colInd[:0]
	m.DataManager.ResizeInPlace(0)
}

// SwapRows 交换两行（重建CSR区间以保持列索引有序）
func (m *sparseMatrix[T]) SwapRows(row1, row2 int) {
	if row1 == row2 {
		return
	}
	if row1 > row2 {
		row1, row2 = row2, row1
	}
	s1, e1 := m.rowPtr[row1], m.rowPtr[row1+1]
	s2, e2 := m.rowPtr[row2], m.rowPtr[row2+1]

	cols1 := append([]int(nil), m.colInd[s1:e1]...)
	cols2 := append([]int(nil), m.colInd[s2:e2]...)
	vals1 := make([]T, e1-s1)
	for i := range vals1 {
		vals1[i] = m.DataManager.Get(s1 + i)
	}
	vals2 := make([]T, e2-s2)
	for i := range vals2 {
		vals2[i] = m.DataManager.Get(s2 + i)
	}

	newColInd := make([]int, 0, len(m.colInd))
	newColInd = append(newColInd, m.colInd[:s1]...)
	newColInd = append(newColInd, cols2...)
	newColInd = append(newColInd, m.colInd[e1:s2]...)
	newColInd = append(newColInd, cols1...)
	newColInd = append(newColInd, m.colInd[e2:]...)

	newVals := make([]T, 0, len(newColInd))
	for i := 0; i < s1; i++ {
		newVals = append(newVals, m.DataManager.Get(i))
	}
	newVals = append(newVals, vals2...)
	for i := e1; i < s2; i++ {
		newVals = append(newVals, m.DataManager.Get(i))
	}
	newVals = append(newVals, vals1...)
	for i := e2; i < len(m.colInd); i++ {
		newVals = append(newVals, m.DataManager.Get(i))
	}

	delta := len(cols2) - len(cols1)
	for i := row1 + 1; i <= row2; i++ {
		m.rowPtr[i] += delta
	}

	m.colInd = newColInd
	m.DataManager = NewDataManagerWithData(newVals)
}
