package spaces_repositories

var spaceRepository = &SpaceRepository{}
var membershipRepository = &MembershipRepository{}

func GetSpaceRepository() *SpaceRepository {
	return spaceRepository
}

func GetMembershipRepository() *MembershipRepository {
	return membershipRepository
}
